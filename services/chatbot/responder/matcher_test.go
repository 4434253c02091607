// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// Tests for keyword matching and category selection

package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Matches Tests
// =============================================================================

func TestMatches_PatternInsideMessage(t *testing.T) {
	assert.True(t, Matches("mon fils fait une crise", []string{"crise", "meltdown"}))
}

func TestMatches_CaseInsensitive(t *testing.T) {
	patterns := []string{"comment communiquer"}
	assert.True(t, Matches("COMMENT COMMUNIQUER", patterns))
	assert.True(t, Matches("comment communiquer", patterns))
	assert.True(t, Matches("Comment Communiquer avec lui ?", patterns))
}

func TestMatches_PatternInsideLongerWord(t *testing.T) {
	// Loose containment: "crise" fires inside "crises".
	assert.True(t, Matches("il fait des crises tous les soirs", []string{"crise"}))
}

func TestMatches_MultiWordPatternNeedsFullPhrase(t *testing.T) {
	assert.False(t, Matches("comment le calmer ?", []string{"comment communiquer", "comment parler"}))
	assert.True(t, Matches("je ne sais pas comment parler avec lui", []string{"comment parler"}))
}

func TestMatches_NoMatch(t *testing.T) {
	assert.False(t, Matches("xyzzy plugh", []string{"crise", "bonjour", "routine"}))
}

// =============================================================================
// SelectCategory Tests
// =============================================================================

func TestSelectCategory_CriseMessage(t *testing.T) {
	category, ok := SelectCategory("Mon fils fait une crise, comment le calmer?")
	require.True(t, ok)
	assert.Contains(t, category.Patterns, "crise")
}

func TestSelectCategory_SameCategoryRegardlessOfCase(t *testing.T) {
	upper, ok := SelectCategory("COMMENT COMMUNIQUER")
	require.True(t, ok)
	lower, ok := SelectCategory("comment communiquer")
	require.True(t, ok)
	assert.Equal(t, upper.Patterns, lower.Patterns)
	assert.Contains(t, upper.Patterns, "communication")
}

func TestSelectCategory_InteractionBeatsGeneral(t *testing.T) {
	// "merci" is a general pattern and "routine" an interaction one; the
	// interaction group must win.
	category, ok := SelectCategory("merci pour ces conseils sur la routine")
	require.True(t, ok)
	assert.Contains(t, category.Patterns, "routine")
}

func TestSelectCategory_GeneralFallback(t *testing.T) {
	category, ok := SelectCategory("bonjour")
	require.True(t, ok)
	assert.Contains(t, category.Patterns, "bonjour")
}

func TestSelectCategory_NoMatch(t *testing.T) {
	_, ok := SelectCategory("xyzzy plugh")
	assert.False(t, ok)
}

func TestSelectCategory_FirstMatchWinsWithinGroup(t *testing.T) {
	// "sommeil" and "coucher" live in the same category; a message hitting
	// routine first must resolve to routine.
	category, ok := SelectCategory("notre routine du coucher ne marche plus")
	require.True(t, ok)
	assert.Contains(t, category.Patterns, "routine")
}
