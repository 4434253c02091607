// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NeuroAideAI/NeuroAide/services/chatbot/handlers"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/observability"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/responder"
)

func SetupRoutes(router *gin.Engine, resp responder.Responder,
	metrics *observability.ChatMetrics) {

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/chat", handlers.HandleChat(resp, metrics))
		api.GET("/health", handlers.HealthCheck)
	}
}
