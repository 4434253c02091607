// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// Tests for the rule-based and generative responder strategies

package responder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuroAideAI/NeuroAide/services/chatbot/conversation"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/knowledge"
	"github.com/NeuroAideAI/NeuroAide/services/llm"
)

// MockLLMClient implements llm.LLMClient for responder testing.
type MockLLMClient struct {
	Response   string
	Err        error
	LastPrompt string
	Calls      int
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	return m.Response, m.Err
}

func criseResponses(t *testing.T) []string {
	t.Helper()
	for _, category := range knowledge.Interaction() {
		for _, pattern := range category.Patterns {
			if pattern == "crise" {
				return category.Responses
			}
		}
	}
	t.Fatal("no crise category in knowledge base")
	return nil
}

// =============================================================================
// RuleBased Tests
// =============================================================================

func TestRuleBased_CriseMessageAnswersFromCriseSet(t *testing.T) {
	r := NewRuleBased()
	expected := criseResponses(t)
	for range 20 {
		reply, source := r.Respond(context.Background(), "Mon fils fait une crise, comment le calmer?", nil)
		assert.Contains(t, expected, reply)
		assert.Equal(t, SourceRule, source)
	}
}

func TestRuleBased_NoMatchYieldsDefault(t *testing.T) {
	r := NewRuleBased()
	reply, source := r.Respond(context.Background(), "xyzzy plugh", nil)
	assert.Equal(t, knowledge.DefaultResponse, reply)
	assert.Equal(t, SourceRule, source)
}

func TestRuleBased_IgnoresUserContext(t *testing.T) {
	r := NewRuleBased()
	expected := criseResponses(t)
	contexts := []map[string]string{nil, {}, {"user_id": "alice"}, {"user_id": "bob", "extra": "x"}}
	for _, userCtx := range contexts {
		reply, _ := r.Respond(context.Background(), "une crise", userCtx)
		assert.Contains(t, expected, reply)
	}
}

func TestRuleBased_NonEmptyForAnyMessage(t *testing.T) {
	r := NewRuleBased()
	for _, message := range []string{"bonjour", "merci", "sommeil", "???", "a"} {
		reply, _ := r.Respond(context.Background(), message, nil)
		assert.NotEmpty(t, reply)
	}
}

// =============================================================================
// Generative Tests
// =============================================================================

func newGenerative(mock *MockLLMClient) (*Generative, *conversation.History) {
	history := conversation.NewHistory()
	return NewGenerative(mock, history, NewRuleBased(), time.Second), history
}

func TestGenerative_ReturnsBackendReply(t *testing.T) {
	mock := &MockLLMClient{Response: "Voici quelques pistes concrètes pour apaiser votre enfant."}
	g, _ := newGenerative(mock)

	reply, source := g.Respond(context.Background(), "Mon fils fait une crise", map[string]string{"user_id": "u1"})

	assert.Equal(t, "Voici quelques pistes concrètes pour apaiser votre enfant.", reply)
	assert.Equal(t, SourceGenerative, source)
	assert.Equal(t, 1, mock.Calls)
}

func TestGenerative_PromptIsLastFiveMessages(t *testing.T) {
	mock := &MockLLMClient{Response: "Une réponse suffisamment longue pour passer le filtre."}
	g, _ := newGenerative(mock)
	userCtx := map[string]string{"user_id": "u1"}

	for _, message := range []string{"m1", "m2", "m3", "m4", "m5", "m6"} {
		g.Respond(context.Background(), message, userCtx)
	}

	assert.Equal(t, "m2 m3 m4 m5 m6", mock.LastPrompt)
}

func TestGenerative_StripsPromptEcho(t *testing.T) {
	mock := &MockLLMClient{}
	g, _ := newGenerative(mock)
	userCtx := map[string]string{"user_id": "u1"}

	// Sampling decoders echo the input; the responder must strip it.
	mock.Response = "bonjour docteur Voici une réponse utile et détaillée pour vous."
	reply, source := g.Respond(context.Background(), "bonjour docteur", userCtx)

	assert.Equal(t, "Voici une réponse utile et détaillée pour vous.", reply)
	assert.Equal(t, SourceGenerative, source)
}

func TestGenerative_ShortReplyFallsBackToRules(t *testing.T) {
	mock := &MockLLMClient{Response: "ok"}
	g, _ := newGenerative(mock)
	expected := criseResponses(t)

	reply, source := g.Respond(context.Background(), "Mon fils fait une crise", map[string]string{"user_id": "u1"})

	assert.Contains(t, expected, reply)
	assert.Equal(t, SourceFallback, source)
}

func TestGenerative_EmptyReplyFallsBackToRules(t *testing.T) {
	mock := &MockLLMClient{Response: "   "}
	g, _ := newGenerative(mock)

	reply, source := g.Respond(context.Background(), "xyzzy plugh", map[string]string{"user_id": "u1"})

	assert.Equal(t, knowledge.DefaultResponse, reply)
	assert.Equal(t, SourceFallback, source)
}

func TestGenerative_BackendErrorFallsBackToRules(t *testing.T) {
	mock := &MockLLMClient{Err: errors.New("backend unavailable")}
	g, _ := newGenerative(mock)
	expected := criseResponses(t)

	reply, source := g.Respond(context.Background(), "Mon fils fait une crise", map[string]string{"user_id": "u1"})

	assert.Contains(t, expected, reply)
	assert.Equal(t, SourceFallback, source)
}

func TestGenerative_FallbackUsesOriginalMessageNotHistory(t *testing.T) {
	mock := &MockLLMClient{Err: errors.New("down")}
	g, _ := newGenerative(mock)
	userCtx := map[string]string{"user_id": "u1"}

	// Seed history with a topic that would match a different category.
	g.Respond(context.Background(), "bonjour", userCtx)

	reply, _ := g.Respond(context.Background(), "Mon fils fait une crise", userCtx)
	assert.Contains(t, criseResponses(t), reply)
}

func TestGenerative_AppendsToHistoryInOrder(t *testing.T) {
	mock := &MockLLMClient{Response: "Une réponse suffisamment longue pour passer le filtre."}
	g, history := newGenerative(mock)
	userCtx := map[string]string{"user_id": "u1"}

	g.Respond(context.Background(), "premier", userCtx)
	g.Respond(context.Background(), "deuxième", userCtx)

	assert.Equal(t, []string{"premier", "deuxième"}, history.Recent("u1", 5))
}

func TestGenerative_DefaultUserIDWhenContextMissing(t *testing.T) {
	mock := &MockLLMClient{Response: "Une réponse suffisamment longue pour passer le filtre."}
	g, history := newGenerative(mock)

	g.Respond(context.Background(), "sans contexte", nil)
	g.Respond(context.Background(), "toujours sans", map[string]string{})

	assert.Equal(t, []string{"sans contexte", "toujours sans"}, history.Recent("default", 5))
}

func TestResolveUserID(t *testing.T) {
	assert.Equal(t, "default", resolveUserID(nil))
	assert.Equal(t, "default", resolveUserID(map[string]string{}))
	assert.Equal(t, "default", resolveUserID(map[string]string{"user_id": ""}))
	assert.Equal(t, "alice", resolveUserID(map[string]string{"user_id": "alice"}))
}

func TestGenerative_ReplyNeverEmpty(t *testing.T) {
	for _, mock := range []*MockLLMClient{
		{Response: ""},
		{Response: strings.Repeat(" ", 40)},
		{Err: errors.New("boom")},
		{Response: "Une vraie réponse générée par le modèle de langage."},
	} {
		g, _ := newGenerative(mock)
		reply, _ := g.Respond(context.Background(), "bonjour", nil)
		require.NotEmpty(t, reply)
	}
}
