package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/event"
	"github.com/lixenwraith/synaptic/parameter"
	"github.com/lixenwraith/synaptic/vmath"
)

func newRippleSim(p parameter.Set) (*engine.Simulation, *RippleSystem) {
	sim := engine.NewSimulation(engine.Config{
		Params: p,
		Clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
		Seed:   1,
	})
	return sim, NewRippleSystem(sim)
}

func floorImpact() event.WallImpact {
	return event.WallImpact{
		Node:   0,
		Wall:   event.WallFloor,
		Point:  vmath.Vec3F{X: 2, Y: -10, Z: 1},
		Normal: vmath.Vec3F{Y: 1},
		Speed:  0.2,
	}
}

// TestRippleSpawnFromImpact verifies an impact event becomes a ripple with
// size and duration captured from the current parameters
func TestRippleSpawnFromImpact(t *testing.T) {
	p := parameter.Default()
	p.RippleIntensity = 1.5
	p.RippleSize = 2.0
	p.RippleDuration = 1.2

	sim, rs := newRippleSim(p)
	sim.Events.Push(floorImpact())

	rs.Update(sim, engine.NominalDT)

	if len(sim.Ripples) != 1 {
		t.Fatalf("Expected 1 ripple, got %d", len(sim.Ripples))
	}
	r := sim.Ripples[0]
	if r.MaxRadius != rippleBaseRadius*1.5*2.0 {
		t.Errorf("Expected max radius %v, got %v", rippleBaseRadius*1.5*2.0, r.MaxRadius)
	}
	if r.MaxAge != 1.2 {
		t.Errorf("Expected max age 1.2, got %v", r.MaxAge)
	}
	if r.Wall != event.WallFloor {
		t.Errorf("Expected floor wall, got %v", r.Wall)
	}
	if r.Position != (vmath.Vec3F{X: 2, Y: -10, Z: 1}) {
		t.Errorf("Expected impact point carried over, got %+v", r.Position)
	}
}

// TestRippleFrontWallSkipped verifies the camera-facing wall never ripples
// while its impact still reaches downstream consumers
func TestRippleFrontWallSkipped(t *testing.T) {
	p := parameter.Default()
	sim, rs := newRippleSim(p)

	imp := floorImpact()
	imp.Wall = event.WallFront
	imp.Normal = vmath.Vec3F{Z: -1}
	sim.Events.Push(imp)

	rs.Update(sim, engine.NominalDT)

	if len(sim.Ripples) != 0 {
		t.Errorf("Expected no ripple on the front wall, got %d", len(sim.Ripples))
	}
	if len(rs.Impacts) != 1 {
		t.Errorf("Expected the impact still drained for consumers, got %d", len(rs.Impacts))
	}
}

// TestRippleDisabled verifies disabled ripples still drain the event queue
func TestRippleDisabled(t *testing.T) {
	p := parameter.Default()
	p.ShowRipples = false

	sim, rs := newRippleSim(p)
	sim.Events.Push(floorImpact())

	rs.Update(sim, engine.NominalDT)

	if len(sim.Ripples) != 0 {
		t.Errorf("Expected no ripples while disabled, got %d", len(sim.Ripples))
	}
	if sim.Events.Len() != 0 {
		t.Errorf("Expected event queue drained, got %d pending", sim.Events.Len())
	}
	if len(rs.Impacts) != 1 {
		t.Errorf("Expected impact exposed for consumers, got %d", len(rs.Impacts))
	}
}

// TestRippleCapturedParametersSurviveChange verifies live ripples keep the
// spawn-time size and duration after the parameters change
func TestRippleCapturedParametersSurviveChange(t *testing.T) {
	p := parameter.Default()
	p.RippleIntensity = 1.0
	p.RippleSize = 1.0

	sim, rs := newRippleSim(p)
	sim.Events.Push(floorImpact())
	rs.Update(sim, engine.NominalDT)

	captured := sim.Ripples[0].MaxRadius

	next := p
	next.RippleIntensity = 3.0
	next.RippleSize = 3.0
	sim.Apply(next)
	rs.Update(sim, engine.NominalDT)

	if sim.Ripples[0].MaxRadius != captured {
		t.Errorf("Expected captured max radius %v, got %v", captured, sim.Ripples[0].MaxRadius)
	}
}

// TestRippleLifecycle runs a ripple to expiry: radius grows, opacity
// strictly fades, and the resource is released exactly once at retirement
func TestRippleLifecycle(t *testing.T) {
	p := parameter.Default()
	p.RippleDuration = 0.5

	sim, rs := newRippleSim(p)
	live := sim.Resources.Live()

	sim.Events.Push(floorImpact())
	rs.Update(sim, engine.NominalDT)

	prevRadius := sim.Ripples[0].Radius
	prevOpacity := sim.Ripples[0].Opacity
	for len(sim.Ripples) > 0 {
		rs.Update(sim, engine.NominalDT)
		if len(sim.Ripples) == 0 {
			break
		}
		r := sim.Ripples[0]
		if r.Radius <= prevRadius {
			t.Fatalf("Expected growing radius, got %v after %v", r.Radius, prevRadius)
		}
		if r.Opacity >= prevOpacity {
			t.Fatalf("Expected fading opacity, got %v after %v", r.Opacity, prevOpacity)
		}
		prevRadius, prevOpacity = r.Radius, r.Opacity
	}

	if got := sim.Resources.Live(); got != live {
		t.Errorf("Expected ripple resource released, %d handles leaked", got-live)
	}
	if got := sim.Resources.DoubleReleases(); got != 0 {
		t.Errorf("Expected no double releases, got %d", got)
	}
	if got := sim.Status.Int("ripples.retired").Load(); got != 1 {
		t.Errorf("Expected 1 retirement counted, got %d", got)
	}
}
