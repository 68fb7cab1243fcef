package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/synaptic/vmath"
)

// TestCameraBoundsTracksAspect verifies the collision box width follows
// aspect changes while the height stays frustum-derived
func TestCameraBoundsTracksAspect(t *testing.T) {
	cam := NewCamera(60, 2.0, 30)

	box := cam.Bounds(20)
	halfY := math.Tan(60*math.Pi/360) * 30
	if math.Abs(box.HalfY-halfY) > 1e-9 {
		t.Errorf("Expected halfY %v, got %v", halfY, box.HalfY)
	}
	if math.Abs(box.HalfX-halfY*2.0) > 1e-9 {
		t.Errorf("Expected halfX %v, got %v", halfY*2.0, box.HalfX)
	}
	if box.HalfZ != 10 {
		t.Errorf("Expected halfZ 10, got %v", box.HalfZ)
	}

	cam.SetAspect(1.0)
	box = cam.Bounds(20)
	if math.Abs(box.HalfX-halfY) > 1e-9 {
		t.Errorf("Expected square box after aspect change, got halfX %v", box.HalfX)
	}
}

// TestCameraInfluenceFalloff verifies the pointer influence peaks under the
// pointer and falls off linearly to zero at the radius
func TestCameraInfluenceFalloff(t *testing.T) {
	cam := NewCamera(60, 1.0, 30)
	cam.SetPointer(0, 0)

	at := func(x float64) float64 {
		return cam.Influence(vmath.Vec3F{X: x}, 6)
	}

	if got := at(0); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected full influence under the pointer, got %v", got)
	}
	if got := at(3); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected half influence at half radius, got %v", got)
	}
	if got := at(8); got != 0 {
		t.Errorf("Expected zero influence beyond radius, got %v", got)
	}
}

// TestCameraInfluenceZeroRadius verifies a degenerate radius never divides
func TestCameraInfluenceZeroRadius(t *testing.T) {
	cam := NewCamera(60, 1.0, 30)
	if got := cam.Influence(vmath.Vec3F{}, 0); got != 0 {
		t.Errorf("Expected zero influence for zero radius, got %v", got)
	}
}

// TestCameraInfluenceBehindCamera verifies points at or past the camera
// plane report zero
func TestCameraInfluenceBehindCamera(t *testing.T) {
	cam := NewCamera(60, 1.0, 30)
	if got := cam.Influence(vmath.Vec3F{Z: 35}, 6); got != 0 {
		t.Errorf("Expected zero influence behind the camera, got %v", got)
	}
}
