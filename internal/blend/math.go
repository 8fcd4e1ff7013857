package blend

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the float32 machine epsilon (2^-23).
//
// A layer alpha at or below Epsilon leaves the destination pixel untouched,
// and an output alpha at or below Epsilon yields black. The value only
// decides when work can be skipped; it is not a visual threshold.
const Epsilon float32 = 1.0 / (1 << 23)

// clamp limits v to [lo, hi].
func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// unit converts an 8-bit channel to [0, 1].
func unit(c byte) float32 {
	return float32(c) / 255
}

// quantize converts a value in [0, 1] back to 8 bits, rounding half away
// from zero.
func quantize(v float32) byte {
	return byte(math.Round(float64(v * 255)))
}
