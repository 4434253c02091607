// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package responder

import (
	"strings"

	"github.com/NeuroAideAI/NeuroAide/services/chatbot/knowledge"
)

// Matches reports whether the message triggers any of the patterns.
//
// Matching is a case-insensitive containment check of each pattern against
// the whole lowercased message: "crise" matches "une crise sensorielle" and
// also "ses crises". The pattern set is small and hand-written, so recall is
// favored over precision. Multi-word patterns only fire when the full phrase
// appears in the message. No stemming, no fuzzy matching.
func Matches(message string, patterns []string) bool {
	lowered := strings.ToLower(message)
	for _, pattern := range patterns {
		if strings.Contains(lowered, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// SelectCategory picks the category for a message: interaction categories are
// tested first, then general ones, each group in its fixed order, first match
// wins. The boolean is false when nothing matched.
func SelectCategory(message string) (knowledge.Category, bool) {
	for _, category := range knowledge.Interaction() {
		if Matches(message, category.Patterns) {
			return category, true
		}
	}
	for _, category := range knowledge.General() {
		if Matches(message, category.Patterns) {
			return category, true
		}
	}
	return knowledge.Category{}, false
}
