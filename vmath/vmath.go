// Package vmath provides float64 vector math and easing curves for the
// simulation core. Hot-path helpers avoid allocation.
package vmath

// Lerp interpolates between a and b, t unclamped.
// The two-product form is exact at t=0 and t=1
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
