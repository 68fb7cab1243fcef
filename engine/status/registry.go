// Package status is a lightweight metrics facade. Systems cache counter
// pointers during init and write directly to atomics from the frame loop;
// the front-end reads a sorted snapshot for its HUD.
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry maps metric names to atomic counters
type Registry struct {
	mu   sync.RWMutex
	ints map[string]*atomic.Int64
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		ints: make(map[string]*atomic.Int64),
	}
}

// Int returns the counter registered under name, creating it on first use.
// The returned pointer stays valid for the registry lifetime
func (r *Registry) Int(name string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.ints[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.ints[name]; ok {
		return c
	}
	c = &atomic.Int64{}
	r.ints[name] = c
	return c
}

// Stat is one named counter value
type Stat struct {
	Name  string
	Value int64
}

// Snapshot returns all counters sorted by name
func (r *Registry) Snapshot() []Stat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]Stat, 0, len(r.ints))
	for name, c := range r.ints {
		stats = append(stats, Stat{Name: name, Value: c.Load()})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
