package render

import (
	"testing"
	"time"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/parameter"
	"github.com/lixenwraith/synaptic/system"
	"github.com/lixenwraith/synaptic/vmath"
)

func newFrameSim(p parameter.Set) *engine.Simulation {
	sim := engine.NewSimulation(engine.Config{
		Params: p,
		Clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
		Seed:   1,
	})
	system.Install(sim)
	return sim
}

// TestSnapshotMirrorsPools verifies the frame carries one view per live
// entity with positions copied out of the pools
func TestSnapshotMirrorsPools(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 4
	sim := newFrameSim(p)
	sim.Step()

	var f Frame
	Snapshot(sim, &f)

	if len(f.Nodes) != len(sim.Nodes) {
		t.Errorf("Expected %d node views, got %d", len(sim.Nodes), len(f.Nodes))
	}
	if len(f.Connections) != len(sim.Connections) {
		t.Errorf("Expected %d connection views, got %d", len(sim.Connections), len(f.Connections))
	}
	for i, nv := range f.Nodes {
		if nv.Position != sim.Nodes[i].Position {
			t.Errorf("Node view %d: expected position %+v, got %+v", i, sim.Nodes[i].Position, nv.Position)
		}
	}
	if f.Background != p.BackgroundColor {
		t.Errorf("Expected background %v, got %v", p.BackgroundColor, f.Background)
	}
	if f.Box != sim.Box() {
		t.Errorf("Expected box copied into frame")
	}
}

// TestSnapshotConnectionEndpoints verifies edges resolve endpoint node
// positions at snapshot time
func TestSnapshotConnectionEndpoints(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 2
	sim := newFrameSim(p)
	sim.Step()

	sim.Nodes[0].Position = vmath.Vec3F{X: -3}
	sim.Nodes[1].Position = vmath.Vec3F{X: 3}

	var f Frame
	Snapshot(sim, &f)

	if len(f.Connections) != 1 {
		t.Fatalf("Expected 1 connection view, got %d", len(f.Connections))
	}
	c := f.Connections[0]
	if c.From != (vmath.Vec3F{X: -3}) || c.To != (vmath.Vec3F{X: 3}) {
		t.Errorf("Expected resolved endpoints, got %+v -> %+v", c.From, c.To)
	}
}

// TestSnapshotAfterPoolShrink verifies applying a smaller node count and
// snapshotting in the same frame hook is safe: the stale mesh is dropped by
// the apply, not left for the next connection-stage run
func TestSnapshotAfterPoolShrink(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 10
	sim := newFrameSim(p)
	sim.Step()

	if len(sim.Connections) != 45 {
		t.Fatalf("Expected 45 edges before shrink, got %d", len(sim.Connections))
	}

	shrunk := p
	shrunk.NodeCount = 9
	sim.Apply(shrunk)

	var f Frame
	Snapshot(sim, &f)

	if len(f.Nodes) != 9 {
		t.Errorf("Expected 9 node views, got %d", len(f.Nodes))
	}
	if len(f.Connections) != 0 {
		t.Errorf("Expected no connection views until the mesh rebuilds, got %d", len(f.Connections))
	}

	sim.Step()
	Snapshot(sim, &f)
	if len(f.Connections) != 36 {
		t.Errorf("Expected 36 edges after rebuild, got %d", len(f.Connections))
	}
}

// TestSnapshotReusesSlices verifies repeated snapshots into the same frame
// do not grow the view slices past the pool sizes
func TestSnapshotReusesSlices(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 6
	sim := newFrameSim(p)

	var f Frame
	for i := 0; i < 10; i++ {
		sim.Step()
		Snapshot(sim, &f)
		if len(f.Nodes) != 6 {
			t.Fatalf("Snapshot %d: expected 6 node views, got %d", i, len(f.Nodes))
		}
	}
}
