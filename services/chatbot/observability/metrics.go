// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the chatbot service.
//
// Metrics are exposed via the /metrics endpoint. All metric operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "neuroaide"

// Subsystem for chat metrics
const chatSubsystem = "chat"

// ChatMetrics holds all Prometheus metrics for the chat endpoint.
//
// # Fields
//
//   - RequestsTotal: Counter of chat requests by status (success, invalid).
//   - RepliesTotal: Counter of replies by source (rule, generative, fallback).
//   - RequestDurationSeconds: Histogram of end-to-end request latency.
//
// Initialize once at startup via InitMetrics(); calling it twice panics on
// duplicate registration.
type ChatMetrics struct {
	// RequestsTotal counts chat requests.
	// Labels: status (success, invalid)
	RequestsTotal *prometheus.CounterVec

	// RepliesTotal counts produced replies by origin.
	// Labels: source (rule, generative, fallback)
	RepliesTotal *prometheus.CounterVec

	// RequestDurationSeconds measures chat request latency.
	// Labels: source
	RequestDurationSeconds *prometheus.HistogramVec
}

// DefaultMetrics is the singleton instance, set by InitMetrics().
var DefaultMetrics *ChatMetrics

// InitMetrics creates and registers all chat metrics on the default registry.
func InitMetrics() *ChatMetrics {
	DefaultMetrics = &ChatMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: chatSubsystem,
				Name:      "requests_total",
				Help:      "Total number of chat requests by status",
			},
			[]string{"status"},
		),

		RepliesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: chatSubsystem,
				Name:      "replies_total",
				Help:      "Total replies by source (rule, generative, fallback)",
			},
			[]string{"source"},
		),

		RequestDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: chatSubsystem,
				Name:      "request_duration_seconds",
				Help:      "End-to-end chat request duration in seconds",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
			},
			[]string{"source"},
		),
	}

	return DefaultMetrics
}

// RecordRequest records a completed chat request. A nil receiver is a no-op
// so handlers can run without metrics wired (unit tests).
func (m *ChatMetrics) RecordRequest(valid bool) {
	if m == nil {
		return
	}
	status := "success"
	if !valid {
		status = "invalid"
	}
	m.RequestsTotal.WithLabelValues(status).Inc()
}

// RecordReply records a produced reply and its latency by source.
// A nil receiver is a no-op.
func (m *ChatMetrics) RecordReply(source string, seconds float64) {
	if m == nil {
		return
	}
	m.RepliesTotal.WithLabelValues(source).Inc()
	m.RequestDurationSeconds.WithLabelValues(source).Observe(seconds)
}
