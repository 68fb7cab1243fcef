package vmath

import (
	"math"
)

// EaseKind selects an easing curve for timed parameter crossfades
type EaseKind int

const (
	EaseLinear EaseKind = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseBounce
	EaseElastic
	easeKindCount
)

var easeNames = [easeKindCount]string{
	"linear",
	"ease-in",
	"ease-out",
	"ease-in-out",
	"bounce",
	"elastic",
}

func (k EaseKind) String() string {
	if k < 0 || k >= easeKindCount {
		return "linear"
	}
	return easeNames[k]
}

// EaseKindFromString resolves a curve name, falling back to linear
func EaseKindFromString(name string) EaseKind {
	for i, n := range easeNames {
		if n == name {
			return EaseKind(i)
		}
	}
	return EaseLinear
}

// NextEaseKind cycles through the supported curves
func NextEaseKind(k EaseKind) EaseKind {
	return (k + 1) % easeKindCount
}

// Ease maps raw progress t in [0,1] through the selected curve.
// Every curve satisfies f(0)=0 and f(1)=1 exactly
func Ease(k EaseKind, t float64) float64 {
	switch k {
	case EaseIn:
		return t * t * t
	case EaseOut:
		inv := 1 - t
		return 1 - inv*inv*inv
	case EaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		inv := -2*t + 2
		return 1 - inv*inv*inv/2
	case EaseBounce:
		return easeBounce(t)
	case EaseElastic:
		return easeElastic(t)
	default:
		return t
	}
}

// easeBounce is the standard 4-segment quadratic bounce
func easeBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// easeElastic is an exponential-decay sine with exact passthrough at both ends
func easeElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	const c4 = 2 * math.Pi / 3
	return -math.Pow(2, 10*t-10) * math.Sin((10*t-10.75)*c4)
}
