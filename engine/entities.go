package engine

import (
	"github.com/lixenwraith/synaptic/core"
	"github.com/lixenwraith/synaptic/event"
	"github.com/lixenwraith/synaptic/vmath"
)

// Node is one bouncing network node. Physical state (position, velocity,
// angular velocity) is mutated only by the motion system; Activity, Scale
// and RenderColor are derived presentation outputs recomputed every frame
type Node struct {
	Index int

	Position        vmath.Vec3F
	Velocity        vmath.Vec3F // per-frame displacement, scaled by nodeSpeed
	AngularVelocity vmath.Vec3F
	Rotation        vmath.Vec3F

	Mass        float64
	Restitution float64 // fixed per node at creation, 0.6-0.9
	Friction    float64 // 0.9-1.0

	BaseColor core.RGB

	Activity  float64 // oscillation in [0,1], purely time-driven
	Influence float64 // pointer proximity in [0,1], presentation only

	LastCollision    float64 // simulation seconds of last impulse, for debounce
	CollidedThisStep bool

	Scale       float64
	RenderColor core.RGB

	Res *Handle
}

// Connection is one undirected edge of the full mesh (A < B by index).
// Endpoint positions are read through the node pool; only the derived
// opacity lives here
type Connection struct {
	A, B    int
	Opacity float64
}

// Particle travels along one connection segment and retires at the far end
// or at end of life, whichever comes first
type Particle struct {
	From, To int

	Progress float64 // [0,1] along the segment
	Age      float64
	Lifespan float64
	Speed    float64

	Position vmath.Vec3F
	Opacity  float64

	Res *Handle
}

// Ripple is a decaying radial impact effect pinned to a wall. Intensity and
// duration parameters are captured at spawn time, never live-updated
type Ripple struct {
	Position vmath.Vec3F
	Normal   vmath.Vec3F
	Wall     event.Wall

	Age       float64
	MaxAge    float64
	MaxRadius float64

	Radius  float64
	Opacity float64

	Res *Handle
}
