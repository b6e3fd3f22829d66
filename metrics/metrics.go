// Package metrics exposes frame pacing, window and event counters for a
// session as Prometheus collectors. A nil *Metrics is valid and records
// nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	FramesTotal   prometheus.Counter
	FrameWait     prometheus.Histogram
	WindowsOpen   prometheus.Gauge
	WindowsTotal  prometheus.Counter
	EventsTotal   *prometheus.CounterVec
	EventsDropped prometheus.Counter
}

// New registers the session collectors on reg. It panics if they are
// already registered there, so each session needs its own registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FramesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "maygo_frames_total",
			Help: "Number of frames begun",
		}),
		FrameWait: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "maygo_frame_wait_seconds",
			Help:    "Time spent in the frame pacer per frame",
			Buckets: []float64{.001, .002, .004, .008, .0167, .033, .066, .1, .25},
		}),
		WindowsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "maygo_windows_open",
			Help: "Number of windows currently registered",
		}),
		WindowsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "maygo_windows_created_total",
			Help: "Number of windows created",
		}),
		EventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maygo_events_total",
				Help: "Number of platform events consumed, by kind",
			},
			[]string{"kind"},
		),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "maygo_events_unrouted_total",
			Help: "Window events addressed to a window that is no longer open",
		}),
	}
}

// NewDefault registers on a fresh private registry and returns both.
func NewDefault() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return New(reg), reg
}

func (m *Metrics) ObserveFrame(waited float64) {
	if m == nil {
		return
	}
	m.FramesTotal.Inc()
	m.FrameWait.Observe(waited)
}

func (m *Metrics) WindowCreated(open int) {
	if m == nil {
		return
	}
	m.WindowsTotal.Inc()
	m.WindowsOpen.Set(float64(open))
}

func (m *Metrics) WindowClosed(open int) {
	if m == nil {
		return
	}
	m.WindowsOpen.Set(float64(open))
}

func (m *Metrics) ObserveEvents(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.EventsTotal.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) ObserveUnrouted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.EventsDropped.Add(float64(n))
}
