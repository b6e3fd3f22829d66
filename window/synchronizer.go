package window

import (
	"math"

	"github.com/ushitora-anqou/maygo/clock"
	"github.com/ushitora-anqou/maygo/constant"
)

const minSleep = 1e-9

// Pacer holds the target frame rate. It does no waiting itself; callers
// snapshot Interval and pass it to Wait.
type Pacer struct {
	rate, interval float64
}

func NewPacer(rate float64) (*Pacer, error) {
	p := &Pacer{}
	if err := p.SetFrameRate(rate); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pacer) SetFrameRate(rate float64) error {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return ErrInvalidFrameRate
	}
	p.rate = rate
	p.interval = 1 / rate
	return nil
}

func (p *Pacer) FrameRate() float64 {
	return p.rate
}

// Interval is the frame interval in seconds.
func (p *Pacer) Interval() float64 {
	return p.interval
}

// Wait blocks until interval seconds have passed on clk since the call
// began, calling refresh with the current time on every iteration. It
// returns the time actually waited.
func Wait(clk clock.Clock, interval float64, refresh func(now float64)) float64 {
	start := clk.Now()
	now := start
	for {
		if refresh != nil {
			refresh(now)
		}
		remaining := interval - (now - start)
		if remaining <= 0 {
			return now - start
		}
		// Never sleep less than minSleep: a step below the clock's resolution
		// would not advance it.
		clk.Sleep(math.Max(math.Min(remaining, constant.PACER_REFRESH_STEP), minSleep))
		now = clk.Now()
	}
}
