package system

import (
	"sync/atomic"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/event"
)

// rippleBaseRadius scales the configured intensity and size into world units
const rippleBaseRadius = 4.0

// RippleSystem turns wall-impact events into decaying radial effects. The
// camera-facing front wall never ripples. Intensity, size and duration are
// captured at spawn time; later parameter changes do not affect live ripples
type RippleSystem struct {
	// Impacts holds this frame's drained wall impacts for downstream
	// consumers (audio, HUD); valid until the next Update
	Impacts []event.WallImpact

	statSpawned *atomic.Int64
	statRetired *atomic.Int64
}

// NewRippleSystem creates the ripple stage and caches its counters
func NewRippleSystem(sim *engine.Simulation) *RippleSystem {
	return &RippleSystem{
		statSpawned: sim.Status.Int("ripples.spawned"),
		statRetired: sim.Status.Int("ripples.retired"),
	}
}

func (rs *RippleSystem) Priority() int {
	return PriorityRipple
}

// Update drains impact events, spawns ripples for eligible walls, and ages
// the pool
func (rs *RippleSystem) Update(sim *engine.Simulation, dt float64) {
	rs.Impacts = sim.Events.Drain(rs.Impacts[:0])

	p := sim.Params()
	if p.ShowRipples {
		for _, imp := range rs.Impacts {
			if imp.Wall == event.WallFront {
				continue
			}
			sim.Ripples = append(sim.Ripples, &engine.Ripple{
				Position:  imp.Point,
				Normal:    imp.Normal,
				Wall:      imp.Wall,
				MaxAge:    p.RippleDuration,
				MaxRadius: rippleBaseRadius * p.RippleIntensity * p.RippleSize,
				Res:       sim.Resources.Acquire(),
			})
			rs.statSpawned.Add(1)
		}
	}

	alive := sim.Ripples[:0]
	for _, r := range sim.Ripples {
		r.Age += dt
		if r.Age >= r.MaxAge {
			r.Res.Release()
			rs.statRetired.Add(1)
			continue
		}

		progress := r.Age / r.MaxAge
		r.Radius = r.MaxRadius * progress
		r.Opacity = 0.6 * (1 - progress*progress*progress)
		alive = append(alive, r)
	}
	sim.Ripples = alive
}
