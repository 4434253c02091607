// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides request and response types for the chatbot API.
package datatypes

import (
	"github.com/go-playground/validator/v10"
)

// chatValidate is the validator instance for chat datatypes.
var chatValidate *validator.Validate

func init() {
	chatValidate = validator.New()
}

// ChatRequest is the POST /api/chat body.
//
// # Fields
//
//   - Message: Required. The user's message. An empty or missing message is
//     rejected with HTTP 400.
//   - Context: Optional. Free-form request context; the only key the service
//     reads is "user_id", which scopes conversation history. Callers that
//     omit it share the "default" history.
type ChatRequest struct {
	Message string            `json:"message" validate:"required"`
	Context map[string]string `json:"context,omitempty"`
}

// Validate checks the request against its validation rules.
func (r *ChatRequest) Validate() error {
	return chatValidate.Struct(r)
}

// UserContext returns the request context map, never nil.
func (r *ChatRequest) UserContext() map[string]string {
	if r.Context == nil {
		return map[string]string{}
	}
	return r.Context
}

// ChatResponse is the success body for POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// ErrorResponse is the error body for rejected chat requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusSuccess is the only status value a successful chat reply carries.
const StatusSuccess = "success"

// ErrEmptyMessage is the user-facing text for an empty or missing message.
// The wording is part of the public API contract.
const ErrEmptyMessage = "Message vide"
