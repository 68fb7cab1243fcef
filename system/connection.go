package system

import (
	"sync/atomic"

	"github.com/lixenwraith/synaptic/engine"
)

// ConnectionSystem maintains the full pairwise edge mesh and its per-frame
// derived opacity. The mesh is rebuilt wholesale whenever the node pool or
// the show-all flag changes, never patched incrementally
type ConnectionSystem struct {
	statRebuilds *atomic.Int64
}

// NewConnectionSystem creates the connection stage and caches its counters
func NewConnectionSystem(sim *engine.Simulation) *ConnectionSystem {
	return &ConnectionSystem{
		statRebuilds: sim.Status.Int("connections.rebuilds"),
	}
}

func (c *ConnectionSystem) Priority() int {
	return PriorityConnection
}

// Update rebuilds the mesh when flagged and refreshes edge opacity from the
// endpoint activities computed earlier this frame
func (c *ConnectionSystem) Update(sim *engine.Simulation, dt float64) {
	if sim.ConnectionsDirty() {
		c.rebuild(sim)
	}

	p := sim.Params()
	for _, conn := range sim.Connections {
		avg := (sim.Nodes[conn.A].Activity + sim.Nodes[conn.B].Activity) / 2
		conn.Opacity = p.ConnectionOpacity * (0.3 + 0.7*avg)
	}
}

// rebuild replaces the edge set with all C(n,2) unordered pairs, or empties
// it when connections are disabled
func (c *ConnectionSystem) rebuild(sim *engine.Simulation) {
	sim.SetConnectionsClean()
	c.statRebuilds.Add(1)

	if !sim.Params().ShowAllConnections {
		sim.Connections = nil
		return
	}

	n := len(sim.Nodes)
	sim.Connections = make([]*engine.Connection, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sim.Connections = append(sim.Connections, &engine.Connection{A: i, B: j})
		}
	}
}
