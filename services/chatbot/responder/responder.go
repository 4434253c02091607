// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package responder produces the chatbot's answers. Two strategies implement
// the same interface: RuleBased picks canned responses by keyword matching
// against the knowledge base, Generative builds a prompt from the user's
// recent history and asks an LLM backend, falling back to RuleBased whenever
// the backend fails or produces weak output. The strategy is selected once at
// startup and injected into the HTTP layer.
package responder

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NeuroAideAI/NeuroAide/services/chatbot/conversation"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/knowledge"
	"github.com/NeuroAideAI/NeuroAide/services/llm"
)

const (
	// HistoryWindow is how many recent messages are flattened into the
	// generative prompt, oldest to newest.
	HistoryWindow = 5

	// minGeneratedRunes is the quality gate: generated replies shorter than
	// this are discarded in favor of the rule-based answer.
	minGeneratedRunes = 10

	// defaultUserID scopes history for callers that send no user_id.
	defaultUserID = "default"
)

// Source tags where a reply came from, for logging and metrics.
type Source string

const (
	SourceRule       Source = "rule"
	SourceGenerative Source = "generative"
	// SourceFallback marks a rule-based reply produced because the
	// generative backend errored out or failed the quality gate.
	SourceFallback Source = "fallback"
)

// Responder turns a user message plus optional request context into a reply.
// Implementations must return a non-empty reply for any non-empty message.
type Responder interface {
	Respond(ctx context.Context, message string, userCtx map[string]string) (string, Source)
}

// =============================================================================
// Rule-based strategy
// =============================================================================

// RuleBased answers from the static knowledge base only.
type RuleBased struct{}

// NewRuleBased creates the rule-based responder.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Respond implements Responder. The request context is ignored: rule-based
// answers depend only on the message.
func (r *RuleBased) Respond(_ context.Context, message string, _ map[string]string) (string, Source) {
	return r.reply(message), SourceRule
}

// reply picks a uniformly random response from the first matching category,
// or the fixed clarification string when nothing matches.
func (r *RuleBased) reply(message string) string {
	category, ok := SelectCategory(message)
	if !ok {
		return knowledge.DefaultResponse
	}
	return category.Responses[rand.IntN(len(category.Responses))]
}

// =============================================================================
// Generative strategy
// =============================================================================

// Generative answers via an LLM backend, using the caller's recent message
// history as the prompt, and degrades to rule-based answers on any backend
// error, timeout, or weak output.
type Generative struct {
	client   llm.LLMClient
	history  *conversation.History
	fallback *RuleBased
	timeout  time.Duration
}

// NewGenerative wires a generative responder. The timeout bounds each
// backend call; on expiry the rule-based fallback answers instead.
func NewGenerative(client llm.LLMClient, history *conversation.History,
	fallback *RuleBased, timeout time.Duration) *Generative {
	return &Generative{
		client:   client,
		history:  history,
		fallback: fallback,
		timeout:  timeout,
	}
}

// Respond implements Responder.
//
// The message is appended to the user's history first, then the last
// HistoryWindow messages are joined into a single prompt. Whatever happens
// on the generative path, the caller always gets a usable reply: backend
// errors and the quality gate both fall back to the rule-based answer for
// the original message, never to a 5xx.
func (g *Generative) Respond(ctx context.Context, message string, userCtx map[string]string) (string, Source) {
	userID := resolveUserID(userCtx)
	g.history.Append(userID, message)
	prompt := strings.Join(g.history.Recent(userID, HistoryWindow), " ")

	genCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	raw, err := g.client.Generate(genCtx, prompt, g.generationParams())
	if err != nil {
		slog.Warn("Generative backend failed, using rule-based fallback",
			"user_id", userID, "error", err)
		return g.fallback.reply(message), SourceFallback
	}

	// Sampling decoders tend to echo the prompt; strip it before judging
	// the reply.
	reply := strings.TrimSpace(strings.ReplaceAll(raw, prompt, ""))
	if utf8.RuneCountInString(reply) < minGeneratedRunes {
		slog.Debug("Generated reply below quality gate, using rule-based fallback",
			"user_id", userID, "reply_runes", utf8.RuneCountInString(reply))
		return g.fallback.reply(message), SourceFallback
	}
	return reply, SourceGenerative
}

// generationParams bounds the completion length and enables top-k/top-p
// sampling.
func (g *Generative) generationParams() llm.GenerationParams {
	maxTokens := 150
	topK := 50
	topP := float32(0.95)
	return llm.GenerationParams{
		MaxTokens: &maxTokens,
		TopK:      &topK,
		TopP:      &topP,
	}
}

func resolveUserID(userCtx map[string]string) string {
	if userCtx != nil {
		if id, ok := userCtx["user_id"]; ok && id != "" {
			return id
		}
	}
	return defaultUserID
}
