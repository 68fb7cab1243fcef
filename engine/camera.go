package engine

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/synaptic/core"
	"github.com/lixenwraith/synaptic/vmath"
)

// BoundsProvider supplies the collision volume for the current frame.
// The motion engine recomputes bounds through it every step so the box
// tracks camera aspect changes without the core knowing about resize events
type BoundsProvider interface {
	Bounds(depth float64) core.Box
}

// FixedBounds is a BoundsProvider returning a constant box, for tests and
// headless runs
type FixedBounds struct {
	Box core.Box
}

func (f FixedBounds) Bounds(depth float64) core.Box {
	return f.Box
}

// InfluenceSource answers world-space pointer influence queries in [0,1].
// Decouples the physics core from any scene graph or ray casting
type InfluenceSource interface {
	Influence(p vmath.Vec3F, radius float64) float64
}

// NullInfluence reports zero influence everywhere
type NullInfluence struct{}

func (NullInfluence) Influence(vmath.Vec3F, float64) float64 { return 0 }

// Camera models the viewing collaborator: perspective parameters plus the
// pointer position in normalized device coordinates. The camera sits on the
// +Z axis looking at the origin, so the +Z box face is the camera-facing
// front wall.
//
// Pointer and aspect writes arrive from asynchronous input/resize events;
// they are stored as atomic float bits and consumed at the next frame
// boundary by the single frame callback
type Camera struct {
	FOVDegrees float64
	Distance   float64

	aspect   atomic.Uint64
	pointerX atomic.Uint64
	pointerY atomic.Uint64
}

// NewCamera creates a camera with the given perspective
func NewCamera(fovDegrees, aspect, distance float64) *Camera {
	c := &Camera{
		FOVDegrees: fovDegrees,
		Distance:   distance,
	}
	c.SetAspect(aspect)
	return c
}

// SetAspect records a new aspect ratio (resize handler)
func (c *Camera) SetAspect(aspect float64) {
	c.aspect.Store(math.Float64bits(aspect))
}

// Aspect returns the current aspect ratio
func (c *Camera) Aspect() float64 {
	return math.Float64frombits(c.aspect.Load())
}

// SetPointer records pointer normalized device coordinates in [-1,1]
// (pointer-move handler)
func (c *Camera) SetPointer(x, y float64) {
	c.pointerX.Store(math.Float64bits(x))
	c.pointerY.Store(math.Float64bits(y))
}

// Pointer returns the pointer NDC coordinates
func (c *Camera) Pointer() (x, y float64) {
	return math.Float64frombits(c.pointerX.Load()),
		math.Float64frombits(c.pointerY.Load())
}

// Bounds derives the collision box from the camera frustum at the origin
// plane and the given nominal scene depth
func (c *Camera) Bounds(depth float64) core.Box {
	return core.BoxFromFrustum(c.FOVDegrees, c.Aspect(), c.Distance, depth)
}

// Influence projects the pointer onto the plane at the query point's camera
// distance and falls off linearly with planar distance. Ray-mesh hits are a
// rendering concern; this plane projection is the core's default
func (c *Camera) Influence(p vmath.Vec3F, radius float64) float64 {
	if radius <= 0 {
		return 0
	}

	planeDist := c.Distance - p.Z
	if planeDist <= 0 {
		return 0
	}

	halfH := math.Tan(c.FOVDegrees*math.Pi/360.0) * planeDist
	halfW := halfH * c.Aspect()

	px, py := c.Pointer()
	wx := px * halfW
	wy := py * halfH

	d := math.Hypot(p.X-wx, p.Y-wy)
	return math.Max(0, 1-d/radius)
}
