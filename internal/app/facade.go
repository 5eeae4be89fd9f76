package app

import (
	"context"
	"sync"

	"sewtrack/internal/domain/model"
	"sewtrack/internal/usecase"
)

// WorkshopFacade is the application surface over the lifecycle engine, the
// roster and the metrics engine. Metrics queries run against a cached
// point-in-time snapshot of the ledger; change-feed notifications and local
// mutations mark it stale so the next query re-fetches, never patches.
type WorkshopFacade struct {
	lifecycle *usecase.LifecycleUseCase
	roster    *usecase.WorkerUseCase
	metrics   *usecase.MetricsUseCase

	mu    sync.Mutex
	snap  *snapshot
	stale bool
}

type snapshot struct {
	orders  []model.Order
	workers []model.Worker
}

// NewWorkshopFacade constructs WorkshopFacade.
func NewWorkshopFacade(lifecycle *usecase.LifecycleUseCase, roster *usecase.WorkerUseCase, metrics *usecase.MetricsUseCase) *WorkshopFacade {
	return &WorkshopFacade{lifecycle: lifecycle, roster: roster, metrics: metrics}
}

// MarkStale flags the cached snapshot for re-fetch. Safe from any goroutine;
// wired as the change-feed callback.
func (f *WorkshopFacade) MarkStale() {
	f.mu.Lock()
	f.stale = true
	f.mu.Unlock()
}

func (f *WorkshopFacade) snapshot(ctx context.Context) (*snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.snap != nil && !f.stale {
		return f.snap, nil
	}
	orders, err := f.lifecycle.List(ctx)
	if err != nil {
		return nil, err
	}
	workers, err := f.roster.List(ctx)
	if err != nil {
		return nil, err
	}
	f.snap = &snapshot{orders: orders, workers: workers}
	f.stale = false
	return f.snap, nil
}

// CreateOrder ingests a new pending order.
func (f *WorkshopFacade) CreateOrder(ctx context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error) {
	order, err := f.lifecycle.Register(ctx, orderNumber, walletType, points, ordererName)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return order, nil
}

// Orders returns a fresh ledger snapshot, newest first.
func (f *WorkshopFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.lifecycle.List(ctx)
}

// Claim applies the pending -> in-progress transition.
func (f *WorkshopFacade) Claim(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	order, err := f.lifecycle.Claim(ctx, orderID, workerID)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return order, nil
}

// Complete finishes an order under the worker's credit.
func (f *WorkshopFacade) Complete(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	order, err := f.lifecycle.Complete(ctx, orderID, workerID)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return order, nil
}

// Reassign attributes and finalizes an order under a new worker.
func (f *WorkshopFacade) Reassign(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	order, err := f.lifecycle.Reassign(ctx, orderID, workerID)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return order, nil
}

// Uncomplete returns a completed order to the open pool.
func (f *WorkshopFacade) Uncomplete(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := f.lifecycle.Uncomplete(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return order, nil
}

// Void terminally cancels an order.
func (f *WorkshopFacade) Void(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := f.lifecycle.Void(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return order, nil
}

// Summaries computes ranked per-worker totals for the range over the cached
// snapshot. Only active workers are eligible; they are ranked in roster
// order (sorted by name), which fixes tie-breaks deterministically.
func (f *WorkshopFacade) Summaries(ctx context.Context, r model.DateRange) ([]model.WorkerSummary, error) {
	snap, err := f.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return f.metrics.Summarize(snap.orders, activeOnly(snap.workers), r), nil
}

// Daily computes the per-day calendar breakdown for the range.
func (f *WorkshopFacade) Daily(ctx context.Context, r model.DateRange) ([]model.DayBucket, error) {
	snap, err := f.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return f.metrics.DailyBreakdown(snap.orders, activeOnly(snap.workers), r), nil
}

// Overview computes the dashboard aggregate.
func (f *WorkshopFacade) Overview(ctx context.Context) (model.OverviewStats, error) {
	snap, err := f.snapshot(ctx)
	if err != nil {
		return model.OverviewStats{}, err
	}
	return f.metrics.Overview(snap.orders, snap.workers), nil
}

// Workers returns the full roster.
func (f *WorkshopFacade) Workers(ctx context.Context) ([]model.Worker, error) {
	return f.roster.List(ctx)
}

// AddWorker registers or restores a worker by name.
func (f *WorkshopFacade) AddWorker(ctx context.Context, name string) (*model.Worker, bool, error) {
	worker, created, err := f.roster.Add(ctx, name)
	if err != nil {
		return nil, false, err
	}
	f.MarkStale()
	return worker, created, nil
}

// SetWorkerActive toggles roster eligibility.
func (f *WorkshopFacade) SetWorkerActive(ctx context.Context, id string, active bool) (*model.Worker, error) {
	worker, err := f.roster.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	f.MarkStale()
	return worker, nil
}

func activeOnly(workers []model.Worker) []model.Worker {
	result := make([]model.Worker, 0, len(workers))
	for _, w := range workers {
		if w.IsActive {
			result = append(result, w)
		}
	}
	return result
}
