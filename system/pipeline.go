package system

import (
	"github.com/lixenwraith/synaptic/engine"
)

// Pipeline bundles the standard stage set with direct handles for callers
// that need stage-specific entry points (transition requests, this-frame
// impacts)
type Pipeline struct {
	Transition  *TransitionSystem
	Motion      *MotionSystem
	Connections *ConnectionSystem
	Particles   *ParticleSystem
	Ripples     *RippleSystem
}

// Install registers the full standard pipeline on the simulation in
// priority order and returns the stage handles
func Install(sim *engine.Simulation) *Pipeline {
	p := &Pipeline{
		Transition:  NewTransitionSystem(sim),
		Motion:      NewMotionSystem(sim),
		Connections: NewConnectionSystem(sim),
		Particles:   NewParticleSystem(sim),
		Ripples:     NewRippleSystem(sim),
	}

	sim.AddSystem(p.Transition)
	sim.AddSystem(p.Motion)
	sim.AddSystem(p.Connections)
	sim.AddSystem(p.Particles)
	sim.AddSystem(p.Ripples)
	return p
}
