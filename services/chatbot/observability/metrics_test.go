// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// Tests for chat metrics

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metrics *ChatMetrics

func init() {
	// Registration panics on duplicates; initialize once per test binary.
	metrics = InitMetrics()
}

func TestInitMetrics_SetsSingleton(t *testing.T) {
	require.NotNil(t, metrics)
	assert.Same(t, metrics, DefaultMetrics)
}

func TestRecordRequest_CountsByStatus(t *testing.T) {
	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("success"))
	metrics.RecordRequest(true)
	metrics.RecordRequest(false)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("success")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("invalid")), 1.0)
}

func TestRecordReply_CountsBySource(t *testing.T) {
	before := testutil.ToFloat64(metrics.RepliesTotal.WithLabelValues("rule"))
	metrics.RecordReply("rule", 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RepliesTotal.WithLabelValues("rule")))
}

func TestNilMetrics_AreNoOps(t *testing.T) {
	var none *ChatMetrics
	assert.NotPanics(t, func() {
		none.RecordRequest(true)
		none.RecordReply("rule", 0.5)
	})
}
