package usecase

import (
	"context"
	"errors"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	"sewtrack/internal/domain/repository"
)

// AssignmentResolver resolves a requested worker id into a concrete worker
// eligible to receive work. Inactive workers are always rejected, even though
// historical records may still reference them.
type AssignmentResolver struct {
	workers repository.WorkerRepository
}

// NewAssignmentResolver constructs AssignmentResolver.
func NewAssignmentResolver(workers repository.WorkerRepository) *AssignmentResolver {
	return &AssignmentResolver{workers: workers}
}

// Resolve returns the worker or a typed precondition failure.
func (r *AssignmentResolver) Resolve(ctx context.Context, workerID string) (*model.Worker, error) {
	if workerID == "" {
		return nil, domainErrors.ErrWorkerNotFound
	}
	worker, err := r.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrWorkerNotFound
		}
		return nil, err
	}
	if !worker.IsActive {
		return nil, domainErrors.ErrInactiveWorker
	}
	return worker, nil
}
