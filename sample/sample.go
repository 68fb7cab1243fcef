// Package sample generates well-separated initial node positions inside a
// volume using best-effort blue-noise rejection sampling. No spatial
// acceleration: acceptable only because the node count stays small.
package sample

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/synaptic/vmath"
)

const (
	candidateTries   = 30
	relaxationRounds = 30
	relaxationFactor = 0.9
	separationScale  = 0.8
)

// Positions returns exactly n points inside an axis-aligned box centered at
// the origin with the given full extents. Points are placed with a target
// minimum pairwise separation of min(w,h,d)/sqrt(n) * 0.8; when rejection
// sampling cannot satisfy it the separation is relaxed, and as a final
// fallback a point is placed unconditionally so the function always
// terminates with n points for any n >= 0
func Positions(rng *rand.Rand, n int, width, height, depth float64) []vmath.Vec3F {
	points := make([]vmath.Vec3F, 0, n)
	if n <= 0 {
		return points
	}

	minExtent := math.Min(width, math.Min(height, depth))
	targetSep := minExtent / math.Sqrt(float64(n)) * separationScale

	points = append(points, randomPoint(rng, width, height, depth))

	for len(points) < n {
		p, ok := tryPlace(rng, points, targetSep, width, height, depth)

		sep := targetSep
		for round := 0; !ok && round < relaxationRounds; round++ {
			sep *= relaxationFactor
			p, ok = tryPlace(rng, points, sep, width, height, depth)
		}

		if !ok {
			// Unconditional placement guarantees termination
			p = randomPoint(rng, width, height, depth)
		}
		points = append(points, p)
	}

	return points
}

// tryPlace attempts up to candidateTries uniform candidates, accepting the
// first that keeps the given separation from every placed point
func tryPlace(rng *rand.Rand, placed []vmath.Vec3F, sep, w, h, d float64) (vmath.Vec3F, bool) {
	for try := 0; try < candidateTries; try++ {
		p := randomPoint(rng, w, h, d)
		if separated(p, placed, sep) {
			return p, true
		}
	}
	return vmath.Vec3F{}, false
}

func separated(p vmath.Vec3F, placed []vmath.Vec3F, sep float64) bool {
	for _, q := range placed {
		if vmath.V3FDist(p, q) < sep {
			return false
		}
	}
	return true
}

func randomPoint(rng *rand.Rand, w, h, d float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: (rng.Float64() - 0.5) * w,
		Y: (rng.Float64() - 0.5) * h,
		Z: (rng.Float64() - 0.5) * d,
	}
}
