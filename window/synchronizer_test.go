package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ushitora-anqou/maygo/clock"
)

func TestPacerRejectsDegenerateRates(t *testing.T) {
	table := []float64{0, -1, -60, math.NaN(), math.Inf(1), math.Inf(-1)}

	p, err := NewPacer(60)
	require.NoError(t, err)
	for _, rate := range table {
		assert.ErrorIs(t, p.SetFrameRate(rate), ErrInvalidFrameRate, "rate %v", rate)
		assert.Equal(t, 60.0, p.FrameRate())
	}

	_, err = NewPacer(0)
	assert.ErrorIs(t, err, ErrInvalidFrameRate)
}

func TestPacerInterval(t *testing.T) {
	p, err := NewPacer(60)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/60, p.Interval(), 1e-12)

	require.NoError(t, p.SetFrameRate(30))
	assert.InDelta(t, 1.0/30, p.Interval(), 1e-12)
}

func TestWaitLowerBound(t *testing.T) {
	for _, rate := range []float64{1, 30, 60, 144, 1000} {
		clk := clock.NewManualClock(10)
		start := clk.Now()
		refreshes := 0
		last := start

		waited := Wait(clk, 1/rate, func(now float64) {
			if now < last {
				t.Fatalf("refresh went backwards: %v -> %v", last, now)
			}
			last = now
			refreshes++
		})

		assert.GreaterOrEqual(t, clk.Now()-start, 1/rate, "rate %v", rate)
		assert.InDelta(t, clk.Now()-start, waited, 1e-9)
		assert.GreaterOrEqual(t, refreshes, 2)
	}
}

func TestWaitZeroInterval(t *testing.T) {
	clk := clock.NewManualClock(0)
	calls := 0
	assert.Equal(t, 0.0, Wait(clk, 0, func(float64) { calls++ }))
	assert.Equal(t, 1, calls)
}

func TestWaitSystemClock(t *testing.T) {
	clk := clock.NewSystemClock()
	start := clk.Now()
	Wait(clk, 0.01, nil)
	assert.GreaterOrEqual(t, clk.Now()-start, 0.01)
}
