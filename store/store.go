// Package store persists named presets. Implementations share the JSON
// exchange format as their payload encoding, so anything a store returns
// has already passed boundary validation.
package store

import (
	"context"
	"errors"

	"github.com/lixenwraith/synaptic/parameter"
)

// ErrNotFound reports a missing preset name
var ErrNotFound = errors.New("preset not found")

// Store defines persistence operations for the preset library
type Store interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, preset parameter.Set) error
	Get(ctx context.Context, name string) (parameter.Set, bool, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

// EnsureBuiltIn seeds the store with every shipped preset that is not
// already present, leaving user-modified copies untouched
func EnsureBuiltIn(ctx context.Context, s Store) error {
	for _, p := range parameter.BuiltIn() {
		_, ok, err := s.Get(ctx, p.Name)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := s.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
