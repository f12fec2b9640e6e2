package calculator

import "math"

// Round rounds v to places decimal digits, halves away from zero (2.45 -> 2.5, -0.25 -> -0.3).
// A negative zero result is returned as 0.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
