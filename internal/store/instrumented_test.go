package store

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func TestInstrumented_CountsCreatesAndHits(t *testing.T) {
	const backend = "instrumented-test"
	s := NewInstrumented(NewMemoryStore(newCountingGenerator()), backend, zap.NewNop())

	createdBefore := testutil.ToFloat64(documentsCreated.WithLabelValues(backend))
	servedBefore := testutil.ToFloat64(documentsServed.WithLabelValues(backend))
	errorsBefore := testutil.ToFloat64(storeErrors.WithLabelValues(backend))

	if _, _, err := s.Create(context.Background(), "alice"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.GetOrCreate(context.Background(), "alice"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.GetOrCreate(context.Background(), ""); err == nil {
		t.Fatal("expected empty uid to fail")
	}

	if got := testutil.ToFloat64(documentsCreated.WithLabelValues(backend)) - createdBefore; got != 1 {
		t.Errorf("expected 1 create, got %v", got)
	}
	if got := testutil.ToFloat64(documentsServed.WithLabelValues(backend)) - servedBefore; got != 1 {
		t.Errorf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(storeErrors.WithLabelValues(backend)) - errorsBefore; got != 1 {
		t.Errorf("expected 1 error, got %v", got)
	}
}
