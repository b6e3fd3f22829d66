package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock(1.5)
	assert.Equal(t, 1.5, c.Now())

	c.Sleep(0.25)
	assert.Equal(t, 1.75, c.Now())

	c.Advance(-3)
	c.Sleep(0)
	assert.Equal(t, 1.75, c.Now(), "non-positive steps must not move the clock")
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	prev := c.Now()
	assert.GreaterOrEqual(t, prev, 0.0)

	for i := 0; i < 100; i++ {
		cur := c.Now()
		if cur < prev {
			t.Fatalf("clock went backwards: %v -> %v", prev, cur)
		}
		prev = cur
	}

	before := c.Now()
	c.Sleep(0.002)
	assert.GreaterOrEqual(t, c.Now()-before, 0.002)
}
