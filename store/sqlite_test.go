package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/synaptic/parameter"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	s := NewSQLiteStore(filepath.Join(t.TempDir(), "presets.db"))
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Expected sqlite init to succeed, got: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestSQLiteStoreRoundTrip verifies save/get/list/delete against a real
// database file
func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	presets := parameter.BuiltIn()
	for _, p := range presets {
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Expected save %q to succeed, got: %v", p.Name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("Expected list to succeed, got: %v", err)
	}
	if len(names) != len(presets) {
		t.Fatalf("Expected %d presets, got %d", len(presets), len(names))
	}

	got, ok, err := s.Get(ctx, presets[0].Name)
	if err != nil || !ok {
		t.Fatalf("Expected stored preset, got ok=%v err=%v", ok, err)
	}
	if got != presets[0] {
		t.Errorf("Expected identical preset after round trip, got %+v", got)
	}

	if err := s.Delete(ctx, presets[0].Name); err != nil {
		t.Errorf("Expected delete to succeed, got: %v", err)
	}
	if err := s.Delete(ctx, presets[0].Name); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on missing delete, got: %v", err)
	}
}

// TestSQLiteStoreUpsert verifies saving the same name replaces the payload
func TestSQLiteStoreUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	p := parameter.Default()
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Expected first save to succeed, got: %v", err)
	}

	p.NodeCount = 21
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Expected upsert to succeed, got: %v", err)
	}

	got, _, err := s.Get(ctx, p.Name)
	if err != nil {
		t.Fatalf("Expected get to succeed, got: %v", err)
	}
	if got.NodeCount != 21 {
		t.Errorf("Expected upserted node count 21, got %d", got.NodeCount)
	}

	names, _ := s.List(ctx)
	if len(names) != 1 {
		t.Errorf("Expected a single row after upsert, got %d", len(names))
	}
}

// TestSQLiteStoreMissing verifies lookups of absent names report not-found
// without error
func TestSQLiteStoreMissing(t *testing.T) {
	s := newTestSQLite(t)

	_, ok, err := s.Get(context.Background(), "no-such-preset")
	if err != nil {
		t.Fatalf("Expected no error for missing preset, got: %v", err)
	}
	if ok {
		t.Error("Expected ok=false for missing preset")
	}
}

// TestSQLiteStoreUninitialized verifies operations fail cleanly before Init
func TestSQLiteStoreUninitialized(t *testing.T) {
	s := NewSQLiteStore("unused.db")

	if _, _, err := s.Get(context.Background(), "x"); err == nil {
		t.Error("Expected error from uninitialized store")
	}
}
