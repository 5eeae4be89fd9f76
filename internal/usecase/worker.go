package usecase

import (
	"context"
	"strings"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	"sewtrack/internal/domain/repository"
)

// WorkerUseCase manages the sewer roster. Removal is soft: deactivated
// workers keep their id and all historical claims.
type WorkerUseCase struct {
	workers repository.WorkerRepository
}

// NewWorkerUseCase constructs WorkerUseCase.
func NewWorkerUseCase(workers repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{workers: workers}
}

// Add registers a worker by name. A name matching a deactivated worker
// restores that identity with its history; an already-active name conflicts.
// Returns whether a new identity was created.
func (u *WorkerUseCase) Add(ctx context.Context, name string) (*model.Worker, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, domainErrors.ErrValidation
	}
	return u.workers.Create(ctx, name)
}

// List returns the full roster, active and inactive.
func (u *WorkerUseCase) List(ctx context.Context) ([]model.Worker, error) {
	return u.workers.List(ctx)
}

// SetActive toggles a worker in or out of the eligible-assignee pool.
func (u *WorkerUseCase) SetActive(ctx context.Context, id string, active bool) (*model.Worker, error) {
	return u.workers.SetActive(ctx, id, active)
}
