package parameter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid wraps all boundary validation failures
var ErrInvalid = errors.New("invalid preset")

// scalarRange is one inclusive bound in the exchange-format contract
type scalarRange struct {
	field  string
	lo, hi float64
	get    func(Set) float64
}

var scalarRanges = []scalarRange{
	{"nodeCount", 5, 25, func(s Set) float64 { return float64(s.NodeCount) }},
	{"nodeSpeed", 0, 2, func(s Set) float64 { return s.NodeSpeed }},
	{"activitySpeed", 0.5, 5, func(s Set) float64 { return s.ActivitySpeed }},
	{"connectionOpacity", 0, 1, func(s Set) float64 { return s.ConnectionOpacity }},
	{"spaceSize", 10, 30, func(s Set) float64 { return s.SpaceSize }},
	{"mouseInfluenceRadius", 2, 15, func(s Set) float64 { return s.MouseInfluenceRadius }},
	{"particleCount", 0, 20, func(s Set) float64 { return s.ParticleCount }},
	{"particleSpeed", 0.1, 3, func(s Set) float64 { return s.ParticleSpeed }},
	{"particleSize", 0.05, 0.5, func(s Set) float64 { return s.ParticleSize }},
	{"rippleIntensity", 0, 2, func(s Set) float64 { return s.RippleIntensity }},
	{"rippleDuration", 0.5, 5, func(s Set) float64 { return s.RippleDuration }},
	{"rippleSize", 0.2, 3, func(s Set) float64 { return s.RippleSize }},
	{"wallRestitution", 0.1, 1.0, func(s Set) float64 { return s.WallRestitution }},
	{"wallFriction", 0.8, 1.0, func(s Set) float64 { return s.WallFriction }},
}

// Validate checks the boundary contract: name present, every scalar within
// its documented range. Returns a single error naming all violations
func Validate(s Set) error {
	var violations []string

	if strings.TrimSpace(s.Name) == "" {
		violations = append(violations, "name: empty")
	}
	for _, r := range scalarRanges {
		v := r.get(s)
		if v < r.lo || v > r.hi {
			violations = append(violations, fmt.Sprintf("%s: %v outside [%v, %v]", r.field, v, r.lo, r.hi))
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(violations, "; "))
	}
	return nil
}
