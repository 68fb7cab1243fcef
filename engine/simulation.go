// Package engine holds the simulation world: the node/particle/ripple pools,
// the live parameter set, collaborator abstractions (clock, camera bounds,
// pointer influence) and the ordered system pipeline that advances one fixed
// step per frame.
package engine

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/synaptic/core"
	"github.com/lixenwraith/synaptic/engine/status"
	"github.com/lixenwraith/synaptic/event"
	"github.com/lixenwraith/synaptic/parameter"
	"github.com/lixenwraith/synaptic/sample"
	"github.com/lixenwraith/synaptic/vmath"
)

// NominalDT is the fixed simulation timestep. Physics, particle and ripple
// aging use it regardless of actual frame pacing; only preset transitions
// read the wall clock
const NominalDT = 1.0 / 60.0

// System is one stage of the per-frame pipeline
type System interface {
	Update(sim *Simulation, dt float64)
	Priority() int // lower values run first
}

// Config wires a Simulation's collaborators. Zero-value fields fall back to
// sensible defaults (fixed 20-unit box, no pointer influence, system clock)
type Config struct {
	Params    parameter.Set
	Bounds    BoundsProvider
	Influence InfluenceSource
	Clock     TimeProvider
	Seed      int64
}

// Simulation is the single-threaded world. All state is touched only from
// the frame callback; asynchronous inputs (pointer, aspect) go through the
// Camera's atomic fields
type Simulation struct {
	Nodes       []*Node
	Particles   []*Particle
	Ripples     []*Ripple
	Connections []*Connection

	BoundsSource BoundsProvider
	Influence    InfluenceSource
	Clock        TimeProvider
	Events       *event.Queue
	Status       *status.Registry
	Resources    *ResourceTracker

	params           parameter.Set
	connectionsDirty bool
	box              core.Box
	simTime          float64
	frame            int64
	rng              *rand.Rand
	systems          []System

	statApplies  *atomic.Int64
	statRebuilds *atomic.Int64
}

// NewSimulation creates a world and populates the initial node pool
func NewSimulation(cfg Config) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		BoundsSource: cfg.Bounds,
		Influence:    cfg.Influence,
		Clock:        cfg.Clock,
		Events:       event.NewQueue(),
		Status:       status.NewRegistry(),
		Resources:    NewResourceTracker(),
		params:       cfg.Params,
		rng:          rand.New(rand.NewSource(seed)),
	}
	if s.BoundsSource == nil {
		s.BoundsSource = FixedBounds{Box: core.NewBox(20, 20, 20)}
	}
	if s.Influence == nil {
		s.Influence = NullInfluence{}
	}
	if s.Clock == nil {
		s.Clock = NewMonotonicTimeProvider()
	}

	s.statApplies = s.Status.Int("sim.applies")
	s.statRebuilds = s.Status.Int("sim.node_rebuilds")

	s.box = s.BoundsSource.Bounds(s.params.SpaceSize)
	s.RebuildNodes()
	return s
}

// AddSystem registers a pipeline stage, keeping stages sorted by priority
func (s *Simulation) AddSystem(sys System) {
	s.systems = append(s.systems, sys)

	// Bubble sort, small N
	for i := 0; i < len(s.systems)-1; i++ {
		for j := 0; j < len(s.systems)-i-1; j++ {
			if s.systems[j].Priority() > s.systems[j+1].Priority() {
				s.systems[j], s.systems[j+1] = s.systems[j+1], s.systems[j]
			}
		}
	}
}

// Step advances the world one fixed timestep: bounds refresh, then every
// system in priority order
func (s *Simulation) Step() {
	s.frame++
	s.simTime += NominalDT
	s.box = s.BoundsSource.Bounds(s.params.SpaceSize)

	for _, sys := range s.systems {
		sys.Update(s, NominalDT)
	}
}

// Params returns a copy of the live parameter set
func (s *Simulation) Params() parameter.Set {
	return s.params
}

// Apply installs a full parameter set immediately and atomically: the node
// pool is rebuilt when the count changed, the connection mesh is flagged for
// rebuild when its inputs changed, and pools of disabled features are
// force-cleared
func (s *Simulation) Apply(p parameter.Set) {
	prev := s.params
	s.params = p
	s.statApplies.Add(1)

	if len(s.Nodes) != p.NodeCount {
		s.RebuildNodes()
	}
	if prev.ShowAllConnections != p.ShowAllConnections {
		s.connectionsDirty = true
	}
	if !p.ShowParticles && len(s.Particles) > 0 {
		s.ClearParticles()
	}
	if !p.ShowRipples && len(s.Ripples) > 0 {
		s.ClearRipples()
	}
}

// RebuildNodes replaces the whole node pool: every existing node's resource
// is released, then a fresh batch is sampled inside the current box. Full
// replacement, never incremental. Particles and the connection mesh hold
// node indices, so both are invalidated here, not on the next frame: a
// snapshot taken between an apply and the next step must never see an index
// into the old pool
func (s *Simulation) RebuildNodes() {
	for _, n := range s.Nodes {
		n.Res.Release()
	}
	s.ClearParticles()
	s.Connections = nil

	n := s.params.NodeCount
	inner := s.box.Scale(0.8)
	positions := sample.Positions(s.rng, n, inner.HalfX*2, inner.HalfY*2, inner.HalfZ*2)

	s.Nodes = make([]*Node, n)
	for i := 0; i < n; i++ {
		s.Nodes[i] = s.newNode(i, positions[i])
	}

	s.connectionsDirty = true
	s.statRebuilds.Add(1)
}

func (s *Simulation) newNode(index int, pos vmath.Vec3F) *Node {
	speed := (0.02 + s.rng.Float64()*0.04) * s.params.SpaceSize / 20.0

	return &Node{
		Index:         index,
		Position:      pos,
		Velocity:      vmath.V3FScale(s.randomDirection(), speed),
		Mass:          0.8 + s.rng.Float64()*0.4,
		Restitution:   0.6 + s.rng.Float64()*0.3,
		Friction:      0.9 + s.rng.Float64()*0.1,
		BaseColor:     s.params.NodeColor,
		LastCollision: -1,
		Scale:         1,
		RenderColor:   s.params.NodeColor,
		Res:           s.Resources.Acquire(),
	}
}

func (s *Simulation) randomDirection() vmath.Vec3F {
	cosT := s.rng.Float64()*2 - 1
	sinT := math.Sqrt(1 - cosT*cosT)
	phi := s.rng.Float64() * 2 * math.Pi
	return vmath.Vec3F{
		X: sinT * math.Cos(phi),
		Y: sinT * math.Sin(phi),
		Z: cosT,
	}
}

// ClearParticles retires every live particle, releasing each resource once
func (s *Simulation) ClearParticles() {
	for _, p := range s.Particles {
		p.Res.Release()
	}
	s.Particles = s.Particles[:0]
}

// ClearRipples retires every live ripple, releasing each resource once
func (s *Simulation) ClearRipples() {
	for _, r := range s.Ripples {
		r.Res.Release()
	}
	s.Ripples = s.Ripples[:0]
}

// ConnectionsDirty reports whether the mesh must be rebuilt this frame
func (s *Simulation) ConnectionsDirty() bool {
	return s.connectionsDirty
}

// SetConnectionsClean acknowledges a completed mesh rebuild
func (s *Simulation) SetConnectionsClean() {
	s.connectionsDirty = false
}

// Box returns the collision volume computed at the start of this step
func (s *Simulation) Box() core.Box {
	return s.box
}

// Time returns accumulated simulation seconds (fixed-step, not wall clock)
func (s *Simulation) Time() float64 {
	return s.simTime
}

// Frame returns the frame counter
func (s *Simulation) Frame() int64 {
	return s.frame
}

// Rng exposes the world's deterministic random source
func (s *Simulation) Rng() *rand.Rand {
	return s.rng
}
