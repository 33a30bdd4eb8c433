package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCall("get_project", "ok", time.Now())
	m.ObserveCall("get_project", "ok", time.Now())
	m.ObserveCall("get_project", "not_found", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("get_project", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("get_project", "not_found")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ToolCallDuration))
}

func TestObserveCallNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCall("get_project", "ok", time.Now())
	})
}
