package repository

import (
	"context"

	"sewtrack/internal/domain/model"
)

// WorkerRepository describes persistence operations for sewers. Create
// re-links by name: adding a name that matches a deactivated worker
// reactivates the original row so historical claims stay attached. The
// returned bool reports whether a new identity was created.
type WorkerRepository interface {
	Create(ctx context.Context, name string) (*model.Worker, bool, error)
	GetByID(ctx context.Context, id string) (*model.Worker, error)
	List(ctx context.Context) ([]model.Worker, error)
	SetActive(ctx context.Context, id string, active bool) (*model.Worker, error)
}
