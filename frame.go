package maygo

import (
	"math"

	"go.uber.org/zap"

	"github.com/ushitora-anqou/maygo/event"
	"github.com/ushitora-anqou/maygo/window"
)

// SetFrameRate changes the target rate from the next BeginFrame on. A wait
// already in progress keeps its interval.
func (s *Session) SetFrameRate(rate float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.pacer.SetFrameRate(rate); err != nil {
		return err
	}
	s.log.Debug("Frame rate changed", zap.Float64("frame_rate", rate))
	return nil
}

func (s *Session) FrameRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pacer.FrameRate()
}

// BeginFrame advances every window's timestamps, applies the pending
// platform events and then waits out the frame interval. It does nothing
// once the application is terminating.
func (s *Session) BeginFrame() {
	s.mu.Lock()
	if s.terminated || s.closed {
		s.mu.Unlock()
		return
	}

	now := s.clock.Now()
	if s.frames > 0 {
		s.delta = now - s.frameStart
	}
	s.frameStart = now
	s.frames++

	s.windows.Each(func(w *window.Window) {
		w.StartFrame(now)
	})

	tally := s.translator.Drain(s.platform, s.windows)
	s.observeEvents(tally)
	if tally.Terminating {
		s.terminated = true
		s.log.Warn("Application is terminating", zap.Int("windows", s.windows.Len()))
		s.mu.Unlock()
		return
	}

	interval := s.pacer.Interval()
	s.mu.Unlock()

	waited := s.wait(interval)
	s.metrics.ObserveFrame(waited)
}

func (s *Session) observeEvents(tally event.Tally) {
	tally.Each(func(k event.Kind, n int) {
		s.metrics.ObserveEvents(k.String(), n)
	})
	if tally.Unrouted > 0 {
		s.metrics.ObserveUnrouted(tally.Unrouted)
		s.log.Debug("Dropped events for closed windows", zap.Int("count", tally.Unrouted))
	}
}

// wait blocks for interval seconds without holding the session lock,
// refreshing the current window's timestamps as time passes.
func (s *Session) wait(interval float64) float64 {
	return window.Wait(s.clock, interval, func(now float64) {
		s.mu.Lock()
		if w, err := s.windows.Current(); err == nil {
			w.Tick(now)
		}
		s.mu.Unlock()
	})
}

// EndFrame presents every window.
func (s *Session) EndFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminated || s.closed {
		return
	}
	s.windows.Each(func(w *window.Window) {
		w.Target().Present()
	})
}

// Wait blocks for the given number of seconds, keeping the current
// window's timestamps up to date.
func (s *Session) Wait(seconds float64) {
	if !(seconds > 0) || math.IsInf(seconds, 1) {
		return
	}
	s.wait(seconds)
}

// GetTime returns the current window's current timestamp in seconds.
func (s *Session) GetTime() (float64, error) {
	var t float64
	err := s.withCurrent(func(w *window.Window) error {
		t = w.CurrentTime()
		return nil
	})
	return t, err
}

// DeltaTime returns the seconds between the starts of the last two frames,
// or 0 before the second BeginFrame.
func (s *Session) DeltaTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delta
}

// Terminated reports whether the platform announced that the application
// is being terminated.
func (s *Session) Terminated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminated
}
