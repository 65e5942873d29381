package store

import (
	"context"
	"reflect"
	"testing"
)

func TestMemoryStore_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	gen := newCountingGenerator()
	s := NewMemoryStore(gen)

	first, created, err := s.Create(ctx, "alice")
	if err != nil || !created {
		t.Fatalf("expected document to be created, created=%v err=%v", created, err)
	}

	second, created, err := s.GetOrCreate(ctx, "alice")
	if err != nil || created {
		t.Fatalf("expected stored document, created=%v err=%v", created, err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical documents")
	}
	if first == second {
		t.Error("expected reads to return a copy")
	}
	if s.Len() != 1 || gen.calls.Load() != 1 {
		t.Errorf("expected 1 document and 1 generation, got %d and %d", s.Len(), gen.calls.Load())
	}
}

func TestMemoryStore_EmptyUID(t *testing.T) {
	s := NewMemoryStore(newCountingGenerator())
	if _, _, err := s.GetOrCreate(context.Background(), ""); err != ErrEmptyUID {
		t.Errorf("expected ErrEmptyUID, got %v", err)
	}
}
