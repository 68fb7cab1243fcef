package store

import (
	"context"
	"sort"
	"sync"

	"github.com/lixenwraith/synaptic/parameter"
)

// MemoryStore keeps presets in process memory. Used by tests and by runs
// without a database path
type MemoryStore struct {
	mu      sync.RWMutex
	presets map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[string][]byte)}
}

func (s *MemoryStore) Init(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, preset parameter.Set) error {
	payload, err := encodePreset(preset)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[preset.Name] = payload
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, name string) (parameter.Set, bool, error) {
	s.mu.RLock()
	payload, ok := s.presets[name]
	s.mu.RUnlock()
	if !ok {
		return parameter.Set{}, false, nil
	}

	p, err := decodePreset(name, payload)
	if err != nil {
		return parameter.Set{}, false, err
	}
	return p, true, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[name]; !ok {
		return ErrNotFound
	}
	delete(s.presets, name)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
