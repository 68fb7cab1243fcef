package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/parameter"
	"github.com/lixenwraith/synaptic/vmath"
)

// TransitionSystem crossfades the whole parameter set between a source and
// target configuration. Two states: idle and transitioning; at most one
// transition in flight, competing requests are dropped. It is the only
// component that reads the wall clock, keeping crossfades duration-accurate
// regardless of frame rate
type TransitionSystem struct {
	active   bool
	from, to parameter.Set
	start    time.Time
	duration time.Duration
	easing   vmath.EaseKind

	statStarted   *atomic.Int64
	statDropped   *atomic.Int64
	statCompleted *atomic.Int64
}

// NewTransitionSystem creates the transition stage and caches its counters
func NewTransitionSystem(sim *engine.Simulation) *TransitionSystem {
	return &TransitionSystem{
		statStarted:   sim.Status.Int("transition.started"),
		statDropped:   sim.Status.Int("transition.dropped"),
		statCompleted: sim.Status.Int("transition.completed"),
	}
}

func (t *TransitionSystem) Priority() int {
	return PriorityTransition
}

// Active reports whether a crossfade is in flight
func (t *TransitionSystem) Active() bool {
	return t.active
}

// Target returns the in-flight target name, or "" when idle
func (t *TransitionSystem) Target() string {
	if !t.active {
		return ""
	}
	return t.to.Name
}

// Begin starts a crossfade to target over the given duration. Returns false
// when a transition is already in flight (the request is dropped, the
// original crossfade keeps its source, target and timing). A non-positive
// duration applies the target immediately
func (t *TransitionSystem) Begin(sim *engine.Simulation, target parameter.Set, duration time.Duration, easing vmath.EaseKind) bool {
	if t.active {
		t.statDropped.Add(1)
		return false
	}
	if duration <= 0 {
		// A zero-length crossfade still counts as a full start/complete
		// cycle in the counters
		sim.Apply(target)
		t.statStarted.Add(1)
		t.statCompleted.Add(1)
		return true
	}

	t.from = sim.Params()
	t.to = target
	t.start = sim.Clock.Now()
	t.duration = duration
	t.easing = easing
	t.active = true
	t.statStarted.Add(1)
	return true
}

// Update advances the crossfade one frame. Idle frames are no-ops
func (t *TransitionSystem) Update(sim *engine.Simulation, dt float64) {
	if !t.active {
		return
	}

	elapsed := sim.Clock.Now().Sub(t.start).Seconds()
	raw := vmath.Clamp01(elapsed / t.duration.Seconds())

	if raw >= 1 {
		// Snap exactly to the target, name included
		sim.Apply(t.to)
		t.active = false
		t.from = parameter.Set{}
		t.to = parameter.Set{}
		t.statCompleted.Add(1)
		return
	}

	eased := vmath.Ease(t.easing, raw)
	sim.Apply(parameter.Lerp(t.from, t.to, eased))
}
