package emath

import "math"

// Some functions that only operate on basic types, that are useful

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt limits v to the range [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ToByte stores a channel value back as a byte: clamp to [0,255],
// then round half to even.
func ToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.RoundToEven(Clamp(v, 0, 255)))
}

// AddByte adds a signed offset to a channel, saturating at 0 and 255.
func AddByte(c uint8, delta int) uint8 {
	return uint8(ClampInt(int(c)+delta, 0, 255))
}
