package maygo

import (
	"math"
	"math/rand/v2"
)

// RandomInt32 returns a random value in [min, max). It returns min when the
// range is empty.
func RandomInt32(min, max int32) int32 {
	if max <= min {
		return min
	}
	return min + int32(rand.Int64N(int64(max)-int64(min)))
}

// RandomInt64 returns a random value in [min, max). It returns min when the
// range is empty.
func RandomInt64(min, max int64) int64 {
	if max <= min {
		return min
	}
	// The difference can exceed MaxInt64; as unsigned it is exact.
	return min + int64(rand.Uint64N(uint64(max-min)))
}

// RandomFloat64 returns a random value in [min, max). It returns min when
// the range is empty or not finite.
func RandomFloat64(min, max float64) float64 {
	if !(max > min) || math.IsInf(max-min, 0) {
		return min
	}
	v := min + rand.Float64()*(max-min)
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}
