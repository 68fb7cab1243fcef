package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/vmath"
)

const (
	// particleLifespan is the fixed maximum age in seconds
	particleLifespan = 3.0

	// minActivityFactor floors the per-pair activity multiplier so quiet
	// pairs still spawn occasionally
	minActivityFactor = 0.3
)

// ParticleSystem runs the stochastic spawn process over all node pairs and
// ages the pool. particleCount is a rate knob, not a cap: the live
// population fluctuates around a level proportional to it and to aggregate
// activity
type ParticleSystem struct {
	statSpawned *atomic.Int64
	statRetired *atomic.Int64
}

// NewParticleSystem creates the particle stage and caches its counters
func NewParticleSystem(sim *engine.Simulation) *ParticleSystem {
	return &ParticleSystem{
		statSpawned: sim.Status.Int("particles.spawned"),
		statRetired: sim.Status.Int("particles.retired"),
	}
}

func (ps *ParticleSystem) Priority() int {
	return PriorityParticle
}

// Update ages and retires existing particles, then runs one spawn pass
func (ps *ParticleSystem) Update(sim *engine.Simulation, dt float64) {
	ps.advance(sim, dt)
	ps.spawn(sim, dt)
}

func (ps *ParticleSystem) advance(sim *engine.Simulation, dt float64) {
	alive := sim.Particles[:0]
	for _, p := range sim.Particles {
		p.Age += dt
		p.Progress += p.Speed * dt

		if p.Progress >= 1 || p.Age >= p.Lifespan {
			p.Res.Release()
			ps.statRetired.Add(1)
			continue
		}

		from := sim.Nodes[p.From].Position
		to := sim.Nodes[p.To].Position
		p.Position = vmath.V3FLerp(from, to, p.Progress)

		ageT := p.Age / p.Lifespan
		p.Opacity = 0.8 * (1 - ageT*ageT)

		alive = append(alive, p)
	}
	sim.Particles = alive
}

// spawn draws one Bernoulli trial per unordered pair. The n<2 guard keeps
// the pair count division well-defined for degenerate node counts
func (ps *ParticleSystem) spawn(sim *engine.Simulation, dt float64) {
	p := sim.Params()
	n := len(sim.Nodes)
	if !p.ShowParticles || n < 2 || p.ParticleCount <= 0 {
		return
	}

	totalPairs := float64(n * (n - 1) / 2)
	base := p.ParticleCount * dt * 2 / totalPairs
	rng := sim.Rng()

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			activity := math.Max(minActivityFactor, (sim.Nodes[i].Activity+sim.Nodes[j].Activity)/2)
			if rng.Float64() >= base*activity {
				continue
			}

			from, to := i, j
			if rng.Float64() < 0.5 {
				from, to = j, i
			}

			sim.Particles = append(sim.Particles, &engine.Particle{
				From:     from,
				To:       to,
				Lifespan: particleLifespan,
				Speed:    p.ParticleSpeed * (0.5 + rng.Float64()*0.5),
				Position: sim.Nodes[from].Position,
				Opacity:  0.8,
				Res:      sim.Resources.Acquire(),
			})
			ps.statSpawned.Add(1)
		}
	}
}
