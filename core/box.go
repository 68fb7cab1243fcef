package core

import (
	"math"

	"github.com/lixenwraith/synaptic/vmath"
)

// Box is an axis-aligned volume centered at origin, described by half-extents.
// Derived from the camera frustum each frame, never persisted
type Box struct {
	HalfX, HalfY, HalfZ float64
}

// NewBox builds a box from full extents
func NewBox(width, height, depth float64) Box {
	return Box{HalfX: width / 2, HalfY: height / 2, HalfZ: depth / 2}
}

// BoxFromFrustum derives collision half-extents from a camera field of view
// (degrees), aspect ratio, camera distance to the origin plane, and a nominal
// scene depth. The X/Y extents are the visible rectangle at the origin plane
func BoxFromFrustum(fovDegrees, aspect, distance, depth float64) Box {
	halfY := math.Tan(fovDegrees*math.Pi/360.0) * distance
	return Box{
		HalfX: halfY * aspect,
		HalfY: halfY,
		HalfZ: depth / 2,
	}
}

// Contains reports whether p lies inside the box (boundary inclusive)
func (b Box) Contains(p vmath.Vec3F) bool {
	return math.Abs(p.X) <= b.HalfX &&
		math.Abs(p.Y) <= b.HalfY &&
		math.Abs(p.Z) <= b.HalfZ
}

// Clamp constrains p to the box
func (b Box) Clamp(p vmath.Vec3F) vmath.Vec3F {
	return vmath.Vec3F{
		X: vmath.Clamp(p.X, -b.HalfX, b.HalfX),
		Y: vmath.Clamp(p.Y, -b.HalfY, b.HalfY),
		Z: vmath.Clamp(p.Z, -b.HalfZ, b.HalfZ),
	}
}

// Scale returns a box with every half-extent multiplied by f
func (b Box) Scale(f float64) Box {
	return Box{HalfX: b.HalfX * f, HalfY: b.HalfY * f, HalfZ: b.HalfZ * f}
}

// MinExtent returns the smallest full extent, used for separation targets
func (b Box) MinExtent() float64 {
	m := b.HalfX
	if b.HalfY < m {
		m = b.HalfY
	}
	if b.HalfZ < m {
		m = b.HalfZ
	}
	return m * 2
}
