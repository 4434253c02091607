// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/NeuroAideAI/NeuroAide/services/chatbot/conversation"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/observability"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/responder"
	"github.com/NeuroAideAI/NeuroAide/services/chatbot/routes"
	"github.com/NeuroAideAI/NeuroAide/services/llm"
)

func initTracer(otelEndpoint string) (func(context.Context), error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("chatbot-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

// newGenerativeClient initializes the configured backend. This is attempted
// exactly once at startup; a nil client (with error) means the process runs
// rule-based for its whole lifetime, there is no retry.
func newGenerativeClient() (llm.LLMClient, error) {
	backendType := os.Getenv("GENERATIVE_BACKEND")
	switch backendType {
	case "local":
		slog.Info("Using local llama.cpp generative backend")
		return llm.NewLocalLlamaCppClient()
	case "ollama":
		slog.Info("Using Ollama generative backend")
		return llm.NewOllamaClient()
	case "openai":
		slog.Info("Using OpenAI generative backend")
		return llm.NewOpenAIClient()
	case "", "disabled":
		return nil, errors.New("generative backend disabled")
	default:
		return nil, errors.New("unknown GENERATIVE_BACKEND value: " + backendType)
	}
}

func generativeTimeout() time.Duration {
	return durationFromEnv("GENERATIVE_TIMEOUT_SECONDS", 30*time.Second)
}

func sweeperConfig() conversation.SweeperConfig {
	cfg := conversation.DefaultSweeperConfig()
	cfg.Interval = durationFromEnv("HISTORY_SWEEP_INTERVAL_SECONDS", cfg.Interval)
	cfg.MaxIdle = durationFromEnv("HISTORY_MAX_IDLE_SECONDS", cfg.MaxIdle)
	return cfg
}

func durationFromEnv(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		slog.Warn("Invalid duration setting, using default", "name", name, "value", raw)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint != "" {
		cleanup, err := initTracer(otelEndpoint)
		if err != nil {
			log.Fatalf("failed to setup the OTLP tracer: %v", err)
		}
		defer cleanup(context.Background())
	} else {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
	}

	metrics := observability.InitMetrics()

	history := conversation.NewHistory()
	sweeper := conversation.NewSweeper(history, sweeperConfig())

	ruleBased := responder.NewRuleBased()
	var resp responder.Responder = ruleBased
	if client, err := newGenerativeClient(); err != nil {
		// Rule-based mode is the supported degraded state, not a fatal error.
		slog.Warn("Running in rule-based mode", "reason", err)
	} else {
		resp = responder.NewGenerative(client, history, ruleBased, generativeTimeout())
		slog.Info("Generative mode enabled", "timeout", generativeTimeout())
	}

	router := gin.Default()
	if otelEndpoint != "" {
		router.Use(otelgin.Middleware("chatbot-service"))
	}

	// The API is meant to be called straight from browser frontends; any
	// origin may call it.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, resp, metrics)

	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start the conversation sweeper: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting the chatbot server", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sweeper.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
