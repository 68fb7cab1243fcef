package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/synaptic/core"
	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/event"
	"github.com/lixenwraith/synaptic/vmath"
)

const (
	// minTimeBetweenCollisions debounces impulse/ripple emission for a node
	// resting on a boundary. The position clamp itself applies every frame
	minTimeBetweenCollisions = 0.1

	// angularImpulseScale converts impact speed to the random spin kick range
	angularImpulseScale = 2.0

	// angularDamping multiplies angular velocity every step, collision or not
	angularDamping = 0.98

	// idleSpinRate is the constant rotation added on collision-free steps,
	// proportional to nodeSpeed
	idleSpinRate = 0.01
)

// MotionSystem advances node positions, resolves wall collisions with
// restitution and friction, and derives the per-node presentation state
type MotionSystem struct {
	statCollisions *atomic.Int64
}

// NewMotionSystem creates the motion stage and caches its counters
func NewMotionSystem(sim *engine.Simulation) *MotionSystem {
	return &MotionSystem{
		statCollisions: sim.Status.Int("motion.collisions"),
	}
}

func (m *MotionSystem) Priority() int {
	return PriorityMotion
}

// Update runs one fixed step for every node
func (m *MotionSystem) Update(sim *engine.Simulation, dt float64) {
	p := sim.Params()
	box := sim.Box()
	now := sim.Time()

	for _, n := range sim.Nodes {
		n.CollidedThisStep = false

		// Phase-shifted oscillator, purely time-driven
		n.Activity = (math.Sin(now*p.ActivitySpeed+float64(n.Index)) + 1) * 0.5

		// Semi-implicit Euler; velocity is already a per-frame displacement
		n.Position = vmath.V3FAdd(n.Position, vmath.V3FScale(n.Velocity, p.NodeSpeed))

		// Axes are independent: both can fire in the same step, debounced
		// against the pre-step collision stamp
		prevCollision := n.LastCollision
		m.collideAxis(sim, n, prevCollision, &n.Position.X, &n.Velocity.X, &n.Velocity.Y, &n.Velocity.Z,
			box.HalfX, event.WallLeft, event.WallRight)
		m.collideAxis(sim, n, prevCollision, &n.Position.Y, &n.Velocity.Y, &n.Velocity.X, &n.Velocity.Z,
			box.HalfY, event.WallFloor, event.WallCeiling)
		m.collideAxis(sim, n, prevCollision, &n.Position.Z, &n.Velocity.Z, &n.Velocity.X, &n.Velocity.Y,
			box.HalfZ, event.WallBack, event.WallFront)

		n.AngularVelocity = vmath.V3FScale(n.AngularVelocity, angularDamping)

		n.Influence = sim.Influence.Influence(n.Position, p.MouseInfluenceRadius)

		// Presentation outputs
		glow := vmath.Clamp01(n.Activity + n.Influence*0.5)
		n.RenderColor = p.NodeColor.Lerp(core.RGBWhite, glow)
		n.Scale = 1 + glow*0.5

		n.Rotation = vmath.V3FAdd(n.Rotation, n.AngularVelocity)
		if !n.CollidedThisStep {
			idle := idleSpinRate * p.NodeSpeed
			n.Rotation.X += idle
			n.Rotation.Y += idle
		}
	}
}

// collideAxis clamps position to the boundary and, when the velocity
// component points outward and the debounce window has passed, reflects it
// with restitution, applies wall friction to the tangential components,
// kicks the angular velocity and emits a wall-impact event
func (m *MotionSystem) collideAxis(sim *engine.Simulation, n *engine.Node, prevCollision float64,
	pos, vel, tan1, tan2 *float64, half float64, loWall, hiWall event.Wall) {

	var wall event.Wall
	var outward bool
	switch {
	case *pos < -half:
		*pos = -half
		wall = loWall
		outward = *vel < 0
	case *pos > half:
		*pos = half
		wall = hiWall
		outward = *vel > 0
	default:
		return
	}

	if !outward {
		// Zero or inward velocity at the boundary: clamp only
		return
	}
	if sim.Time()-prevCollision < minTimeBetweenCollisions {
		return
	}

	p := sim.Params()
	impact := math.Abs(*vel) * p.NodeSpeed

	*vel = -*vel * n.Restitution * p.WallRestitution
	*tan1 *= p.WallFriction
	*tan2 *= p.WallFriction

	kick := impact * angularImpulseScale
	rng := sim.Rng()
	n.AngularVelocity = vmath.V3FAdd(n.AngularVelocity, vmath.Vec3F{
		X: (rng.Float64() - 0.5) * 2 * kick,
		Y: (rng.Float64() - 0.5) * 2 * kick,
		Z: (rng.Float64() - 0.5) * 2 * kick,
	})

	n.LastCollision = sim.Time()
	n.CollidedThisStep = true
	m.statCollisions.Add(1)

	sim.Events.Push(event.WallImpact{
		Node:   n.Index,
		Wall:   wall,
		Point:  n.Position,
		Normal: wallNormal(wall),
		Speed:  impact,
	})
}

func wallNormal(w event.Wall) vmath.Vec3F {
	switch w {
	case event.WallLeft:
		return vmath.Vec3F{X: 1}
	case event.WallRight:
		return vmath.Vec3F{X: -1}
	case event.WallFloor:
		return vmath.Vec3F{Y: 1}
	case event.WallCeiling:
		return vmath.Vec3F{Y: -1}
	case event.WallBack:
		return vmath.Vec3F{Z: 1}
	default:
		return vmath.Vec3F{Z: -1}
	}
}
