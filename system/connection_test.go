package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/parameter"
)

func newConnectionSim(p parameter.Set) (*engine.Simulation, *ConnectionSystem) {
	sim := engine.NewSimulation(engine.Config{
		Params: p,
		Clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
		Seed:   1,
	})
	return sim, NewConnectionSystem(sim)
}

// TestConnectionFullMesh verifies the rebuilt edge set is exactly the
// C(n,2) unordered pairs with A < B
func TestConnectionFullMesh(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 6
	p.ShowAllConnections = true

	sim, cs := newConnectionSim(p)
	cs.Update(sim, engine.NominalDT)

	if got := len(sim.Connections); got != 15 {
		t.Fatalf("Expected 15 edges for 6 nodes, got %d", got)
	}

	seen := make(map[[2]int]bool)
	for _, c := range sim.Connections {
		if c.A >= c.B {
			t.Errorf("Expected A < B, got (%d, %d)", c.A, c.B)
		}
		key := [2]int{c.A, c.B}
		if seen[key] {
			t.Errorf("Duplicate edge (%d, %d)", c.A, c.B)
		}
		seen[key] = true
	}
	if sim.ConnectionsDirty() {
		t.Error("Expected dirty flag cleared after rebuild")
	}
}

// TestConnectionDisabled verifies the mesh empties when connections are
// turned off and repopulates when turned back on
func TestConnectionDisabled(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 5
	p.ShowAllConnections = false

	sim, cs := newConnectionSim(p)
	cs.Update(sim, engine.NominalDT)
	if len(sim.Connections) != 0 {
		t.Errorf("Expected no edges while disabled, got %d", len(sim.Connections))
	}

	on := p
	on.ShowAllConnections = true
	sim.Apply(on)
	if !sim.ConnectionsDirty() {
		t.Fatal("Expected dirty flag after toggling connections on")
	}
	cs.Update(sim, engine.NominalDT)
	if got := len(sim.Connections); got != 10 {
		t.Errorf("Expected 10 edges for 5 nodes, got %d", got)
	}
}

// TestConnectionRebuildOnNodeCountChange verifies a pool rebuild flows
// through to a fresh mesh of the new size
func TestConnectionRebuildOnNodeCountChange(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 4
	p.ShowAllConnections = true

	sim, cs := newConnectionSim(p)
	cs.Update(sim, engine.NominalDT)
	if got := len(sim.Connections); got != 6 {
		t.Fatalf("Expected 6 edges for 4 nodes, got %d", got)
	}

	grown := p
	grown.NodeCount = 8
	sim.Apply(grown)
	cs.Update(sim, engine.NominalDT)
	if got := len(sim.Connections); got != 28 {
		t.Errorf("Expected 28 edges for 8 nodes, got %d", got)
	}
}

// TestConnectionOpacityFromActivity verifies the per-edge opacity formula
// over the endpoint activity average
func TestConnectionOpacityFromActivity(t *testing.T) {
	p := parameter.Default()
	p.NodeCount = 2
	p.ConnectionOpacity = 0.5
	p.ShowAllConnections = true

	sim, cs := newConnectionSim(p)
	sim.Nodes[0].Activity = 0.2
	sim.Nodes[1].Activity = 0.6

	cs.Update(sim, engine.NominalDT)

	want := 0.5 * (0.3 + 0.7*0.4)
	if got := sim.Connections[0].Opacity; got != want {
		t.Errorf("Expected opacity %v, got %v", want, got)
	}
}
