// Package render exposes read-only renderable state for external render
// passes. The core never touches a scene graph; collaborators take a
// Frame snapshot after each step and draw it however they like.
package render

import (
	"github.com/lixenwraith/synaptic/core"
	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/event"
	"github.com/lixenwraith/synaptic/vmath"
)

// NodeView is one node's renderable state
type NodeView struct {
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Scale    float64
	Color    core.RGB
	Activity float64
}

// ConnectionView is one edge with endpoint positions already copied out
type ConnectionView struct {
	From, To vmath.Vec3F
	Color    core.RGB
	Opacity  float64
}

// ParticleView is one traveling particle
type ParticleView struct {
	Position vmath.Vec3F
	Size     float64
	Color    core.RGB
	Opacity  float64
}

// RippleView is one expanding wall ripple
type RippleView struct {
	Position vmath.Vec3F
	Normal   vmath.Vec3F
	Wall     event.Wall
	Radius   float64
	Color    core.RGB
	Opacity  float64
}

// Frame is a complete renderable snapshot of one simulation step
type Frame struct {
	Background  core.RGB
	Box         core.Box
	Nodes       []NodeView
	Connections []ConnectionView
	Particles   []ParticleView
	Ripples     []RippleView
}

// Snapshot fills dst from the simulation's current state, reusing dst's
// slices to avoid per-frame allocation. Pass a zero-value Frame on first use
func Snapshot(sim *engine.Simulation, dst *Frame) {
	p := sim.Params()

	dst.Background = p.BackgroundColor
	dst.Box = sim.Box()

	dst.Nodes = dst.Nodes[:0]
	for _, n := range sim.Nodes {
		dst.Nodes = append(dst.Nodes, NodeView{
			Position: n.Position,
			Rotation: n.Rotation,
			Scale:    n.Scale,
			Color:    n.RenderColor,
			Activity: n.Activity,
		})
	}

	dst.Connections = dst.Connections[:0]
	for _, c := range sim.Connections {
		dst.Connections = append(dst.Connections, ConnectionView{
			From:    sim.Nodes[c.A].Position,
			To:      sim.Nodes[c.B].Position,
			Color:   p.ConnectionColor,
			Opacity: c.Opacity,
		})
	}

	dst.Particles = dst.Particles[:0]
	for _, pt := range sim.Particles {
		dst.Particles = append(dst.Particles, ParticleView{
			Position: pt.Position,
			Size:     p.ParticleSize,
			Color:    p.ParticleColor,
			Opacity:  pt.Opacity,
		})
	}

	dst.Ripples = dst.Ripples[:0]
	for _, r := range sim.Ripples {
		dst.Ripples = append(dst.Ripples, RippleView{
			Position: r.Position,
			Normal:   r.Normal,
			Wall:     r.Wall,
			Radius:   r.Radius,
			Color:    p.RippleColor,
			Opacity:  r.Opacity,
		})
	}
}
