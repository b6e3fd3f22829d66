package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	m, reg := NewDefault()

	m.ObserveFrame(0.016)
	m.ObserveFrame(0.017)
	m.WindowCreated(1)
	m.WindowCreated(2)
	m.WindowClosed(1)
	m.ObserveEvents("window_close", 2)
	m.ObserveEvents("focus_lost", 1)
	m.ObserveEvents("focus_lost", 0)
	m.ObserveUnrouted(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindowsOpen))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WindowsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("window_close")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("focus_lost")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.EventsDropped))

	n, err := testutil.GatherAndCount(reg, "maygo_frame_wait_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveFrame(1)
	m.WindowCreated(1)
	m.WindowClosed(0)
	m.ObserveEvents("other", 1)
	m.ObserveUnrouted(1)
}

func TestDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
