// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/NeuroAideAI/NeuroAide/services/chatbot/datatypes"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/observability"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/responder"
)

var chatTracer = otel.Tracer("neuroaide.chatbot.handlers")

// HandleChat answers POST /api/chat.
//
// The body is a datatypes.ChatRequest; an empty or missing message yields
// HTTP 400 with the "Message vide" error body. Everything else is delegated
// to the injected responder, which always produces a best-effort reply, so
// this handler never returns a 5xx for backend trouble.
func HandleChat(resp responder.Responder, metrics *observability.ChatMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := chatTracer.Start(c.Request.Context(), "HandleChat")
		defer span.End()
		start := time.Now()
		requestID := uuid.NewString()

		var req datatypes.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Warn("Failed to parse the chat request", "request_id", requestID, "error", err)
			metrics.RecordRequest(false)
			c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{Error: datatypes.ErrEmptyMessage})
			return
		}
		if err := req.Validate(); err != nil {
			span.SetStatus(codes.Error, "empty message")
			slog.Warn("Rejected chat request with empty message", "request_id", requestID)
			metrics.RecordRequest(false)
			c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{Error: datatypes.ErrEmptyMessage})
			return
		}

		reply, source := resp.Respond(ctx, req.Message, req.UserContext())

		span.SetAttributes(attribute.String("chat.reply_source", string(source)))
		slog.Info("Answered chat request",
			"request_id", requestID, "source", source, "duration", time.Since(start))
		metrics.RecordRequest(true)
		metrics.RecordReply(string(source), time.Since(start).Seconds())
		c.JSON(http.StatusOK, datatypes.ChatResponse{
			Response: reply,
			Status:   datatypes.StatusSuccess,
		})
	}
}
