// Package system implements the per-frame pipeline stages: preset
// transition, node motion and wall collision, connection mesh, particles and
// ripples. Stages run in fixed priority order and communicate only through
// the simulation world and its event queue.
package system

// Pipeline priorities; lower runs first. The order is part of the frame
// contract: transition writes parameters, motion mutates node state and
// emits impacts, the remaining stages derive their pools from both
const (
	PriorityTransition = 0
	PriorityMotion     = 10
	PriorityConnection = 20
	PriorityParticle   = 30
	PriorityRipple     = 40
)
