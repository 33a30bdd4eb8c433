package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gh_project_mcp"

// Metrics holds the collectors for dispatched tool calls
type Metrics struct {
	ToolCalls        *prometheus.CounterVec
	ToolCallDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of tool calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		ToolCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_call_duration_seconds",
				Help:      "Tool call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.ToolCalls, m.ToolCallDuration)
	}
	return m
}

// ObserveCall records one finished call
func (m *Metrics) ObserveCall(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(operation, outcome).Inc()
	m.ToolCallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
