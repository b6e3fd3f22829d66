package maygo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt32Bounds(t *testing.T) {
	tests := []struct {
		min, max int32
	}{
		{0, 1},
		{-5, 5},
		{10, 12},
		{math.MinInt32, math.MaxInt32},
	}

	for _, tc := range tests {
		for i := 0; i < 1000; i++ {
			v := RandomInt32(tc.min, tc.max)
			if v < tc.min || v >= tc.max {
				t.Fatalf("RandomInt32(%d, %d) = %d", tc.min, tc.max, v)
			}
		}
	}
	assert.Equal(t, int32(0), RandomInt32(0, 1))
}

func TestRandomInt64Bounds(t *testing.T) {
	tests := []struct {
		min, max int64
	}{
		{0, 1},
		{-100, 100},
		{math.MinInt64, math.MaxInt64},
	}

	for _, tc := range tests {
		for i := 0; i < 1000; i++ {
			v := RandomInt64(tc.min, tc.max)
			if v < tc.min || v >= tc.max {
				t.Fatalf("RandomInt64(%d, %d) = %d", tc.min, tc.max, v)
			}
		}
	}
}

func TestRandomFloat64Bounds(t *testing.T) {
	tests := []struct {
		min, max float64
	}{
		{0, 1},
		{-2.5, 2.5},
		{1, math.Nextafter(1, 2)},
	}

	for _, tc := range tests {
		for i := 0; i < 1000; i++ {
			v := RandomFloat64(tc.min, tc.max)
			if v < tc.min || v >= tc.max {
				t.Fatalf("RandomFloat64(%v, %v) = %v", tc.min, tc.max, v)
			}
		}
	}
}

func TestRandomEmptyRange(t *testing.T) {
	assert.Equal(t, int32(7), RandomInt32(7, 7))
	assert.Equal(t, int32(7), RandomInt32(7, 3))
	assert.Equal(t, int64(-9), RandomInt64(-9, -9))
	assert.Equal(t, 1.5, RandomFloat64(1.5, 1.5))
	assert.Equal(t, 1.5, RandomFloat64(1.5, math.NaN()))
	assert.Equal(t, 0.0, RandomFloat64(0, math.Inf(1)))
}
