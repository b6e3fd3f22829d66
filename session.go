// Package maygo is a small game and app framework on top of SDL2. A Session
// owns every open window, turns the platform event queue into per-window
// state once per frame and paces frames to a target rate. Drawing, text,
// image and sound calls go to the window selected with SelectWindow.
//
// A typical loop, run from inside Main:
//
//	s, err := maygo.Open(cfg)
//	...
//	id, err := s.CreateWindow("hello", 640, 480)
//	s.SelectWindow(id)
//	for !s.AllWindowsClosed() {
//		s.BeginFrame()
//		if closing, _ := s.WindowShouldClose(); closing {
//			s.CloseCurrentWindow()
//			continue
//		}
//		s.ClearBackground(maygo.MayGray)
//		s.EndFrame()
//	}
package maygo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/config"
	"github.com/ushitora-anqou/maygo/constant"
	"github.com/ushitora-anqou/maygo/event"
	"github.com/ushitora-anqou/maygo/metrics"
	"github.com/ushitora-anqou/maygo/platform"
	"github.com/ushitora-anqou/maygo/util"
	"github.com/ushitora-anqou/maygo/window"
)

// Main runs run on the thread the platform needs for its window and event
// calls. Programs using the SDL platform must open their session and drive
// it from inside run.
func Main(run func()) {
	platform.Main(run)
}

// Session is safe for concurrent use. Every method holds the session lock
// for its duration except the frame wait in BeginFrame and Wait, which only
// takes it to refresh the current window's timestamps.
type Session struct {
	mu sync.Mutex

	id         uuid.UUID
	platform   platform.Context
	clock      clock.Clock
	windows    *window.Registry
	translator *event.Translator
	pacer      *window.Pacer
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	log        *zap.Logger

	frameStart float64
	delta      float64
	frames     uint64
	terminated bool
	closed     bool
}

type Option func(*Session) error

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) error {
		if l != nil {
			s.log = l
		}
		return nil
	}
}

// WithMetrics records frame, window and event counters into m. g, if not
// nil, is what Gatherer returns.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(s *Session) error {
		s.metrics = m
		s.gatherer = g
		return nil
	}
}

func WithFrameRate(rate float64) Option {
	return func(s *Session) error {
		return s.pacer.SetFrameRate(rate)
	}
}

// New starts a session on an already opened platform context. The session
// takes ownership of ctx and closes it in Close.
func New(ctx platform.Context, opts ...Option) (*Session, error) {
	pacer, err := window.NewPacer(constant.DEFAULT_FRAME_RATE)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:         uuid.New(),
		platform:   ctx,
		clock:      ctx.Clock(),
		windows:    window.NewRegistry(),
		translator: event.NewTranslator(),
		pacer:      pacer,
		log:        util.Logger(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.log = s.log.With(zap.String("session", s.id.String()))
	s.log.Info("Session started", zap.Float64("frame_rate", s.pacer.FrameRate()))
	return s, nil
}

// Open sets up logging, opens the platform described by cfg and starts a
// session on it. A nil cfg means config.Default().
func Open(cfg *config.Config) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := util.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	util.SetLogger(logger)
	if cfg.Log.Trace {
		util.EnableTrace()
	}

	ctx, err := platform.Open(platform.Options{
		Headless:     cfg.Headless,
		AudioFreq:    cfg.Audio.Freq,
		AudioSamples: cfg.Audio.Samples,
		AudioVoices:  cfg.Audio.Voices,
	})
	if err != nil {
		return nil, err
	}

	opts := []Option{WithLogger(logger), WithFrameRate(cfg.FrameRate)}
	if cfg.Metrics.Enabled {
		m, reg := metrics.NewDefault()
		opts = append(opts, WithMetrics(m, reg))
	}
	s, err := New(ctx, opts...)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return s, nil
}

// ID identifies the session in log output.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Gatherer returns the registry the session metrics live in, or nil when
// metrics are disabled.
func (s *Session) Gatherer() prometheus.Gatherer {
	return s.gatherer
}

// Close destroys every window and releases the platform. Calling it again
// does nothing.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	werr := s.windows.RemoveAll()
	s.metrics.WindowClosed(0)
	perr := s.platform.Close()
	s.log.Info("Session closed", zap.Uint64("frames", s.frames))
	return errors.Join(werr, perr)
}

// withCurrent runs fn on the selected window under the session lock.
func (s *Session) withCurrent(fn func(w *window.Window) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.windows.Current()
	if err != nil {
		return err
	}
	return fn(w)
}
