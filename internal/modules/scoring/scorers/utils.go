package scorers

import "math"

// roundToInt rounds half away from zero to the nearest integer
func roundToInt(f float64) int {
	return int(math.Round(f))
}

// clamp restricts v to the [lo, hi] range
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
