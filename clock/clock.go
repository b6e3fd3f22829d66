package clock

import (
	"sync"
	"time"
)

// Clock is a monotonic time source. Now is in seconds since an arbitrary
// origin fixed at construction.
type Clock interface {
	Now() float64
	Sleep(seconds float64)
}

type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return time.Since(c.origin).Seconds()
}

func (c *SystemClock) Sleep(seconds float64) {
	if seconds <= 0 {
		return
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// ManualClock only moves when told to. Sleep advances it by exactly the
// requested amount, so pacing loops driven by it are deterministic.
type ManualClock struct {
	mu  sync.Mutex
	now float64
}

func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Sleep(seconds float64) {
	c.Advance(seconds)
}

func (c *ManualClock) Advance(seconds float64) {
	if seconds <= 0 {
		return
	}
	c.mu.Lock()
	c.now += seconds
	c.mu.Unlock()
}
