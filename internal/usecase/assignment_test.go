package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	testhelpers "sewtrack/internal/test"
)

func TestResolveActiveWorker(t *testing.T) {
	workers := testhelpers.NewWorkerRepositoryStub()
	workers.Put(model.Worker{ID: "w1", Name: "Maria Garcia", IsActive: true})
	resolver := NewAssignmentResolver(workers)

	worker, err := resolver.Resolve(context.Background(), "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if worker.Name != "Maria Garcia" {
		t.Fatalf("unexpected worker %q", worker.Name)
	}
}

func TestResolveInactiveWorker(t *testing.T) {
	workers := testhelpers.NewWorkerRepositoryStub()
	workers.Put(model.Worker{ID: "w1", Name: "Maria Garcia", IsActive: false})
	resolver := NewAssignmentResolver(workers)

	if _, err := resolver.Resolve(context.Background(), "w1"); !errors.Is(err, domainErrors.ErrInactiveWorker) {
		t.Fatalf("expected inactive worker error, got %v", err)
	}
}

func TestResolveMissingWorker(t *testing.T) {
	resolver := NewAssignmentResolver(testhelpers.NewWorkerRepositoryStub())

	if _, err := resolver.Resolve(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrWorkerNotFound) {
		t.Fatalf("expected worker not found, got %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), ""); !errors.Is(err, domainErrors.ErrWorkerNotFound) {
		t.Fatalf("expected worker not found for empty id, got %v", err)
	}
}

func TestResolvePropagatesRepositoryError(t *testing.T) {
	workers := testhelpers.NewWorkerRepositoryStub()
	workers.Err = errors.New("connection reset")
	resolver := NewAssignmentResolver(workers)

	if _, err := resolver.Resolve(context.Background(), "w1"); err == nil || errors.Is(err, domainErrors.ErrWorkerNotFound) {
		t.Fatalf("expected raw repository error, got %v", err)
	}
}
