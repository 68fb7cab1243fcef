package sample

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/synaptic/vmath"
)

// TestPositionsExactCount verifies exactly n points for any n, including
// degenerate counts
func TestPositionsExactCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 2, 5, 25, 100} {
		pts := Positions(rng, n, 20, 20, 20)
		if len(pts) != n {
			t.Errorf("Expected %d points, got %d", n, len(pts))
		}
	}
}

// TestPositionsContainment verifies every point lies inside the volume
func TestPositionsContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w, h, d := 20.0, 14.0, 26.0

	for _, p := range Positions(rng, 25, w, h, d) {
		if math.Abs(p.X) > w/2 || math.Abs(p.Y) > h/2 || math.Abs(p.Z) > d/2 {
			t.Errorf("Expected point inside volume, got %+v", p)
		}
	}
}

// TestPositionsSeparation verifies the blue-noise separation holds when the
// volume has plenty of room relative to the point count
func TestPositionsSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 5
	pts := Positions(rng, n, 30, 30, 30)

	// Absolute floor: target separation after every relaxation round
	target := 30.0 / math.Sqrt(float64(n)) * 0.8
	floor := target * math.Pow(0.9, 30)

	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if d := vmath.V3FDist(pts[i], pts[j]); d < floor {
				t.Errorf("Expected pairwise distance >= %v, got %v for (%d,%d)", floor, d, i, j)
			}
		}
	}
}

// TestPositionsDeterministic verifies identical seeds reproduce identical
// layouts
func TestPositionsDeterministic(t *testing.T) {
	a := Positions(rand.New(rand.NewSource(99)), 10, 20, 20, 20)
	b := Positions(rand.New(rand.NewSource(99)), 10, 20, 20, 20)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical layouts for identical seeds, diverged at %d", i)
		}
	}
}
