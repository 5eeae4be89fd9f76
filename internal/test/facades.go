package test

import (
	"context"

	"sewtrack/internal/domain/model"
)

// OrderFacadeStub allows handler tests to customize order operations.
type OrderFacadeStub struct {
	CreateOrderFn func(context.Context, string, string, int, string) (*model.Order, error)
	OrdersFn      func(context.Context) ([]model.Order, error)
	ClaimFn       func(context.Context, string, string) (*model.Order, error)
	CompleteFn    func(context.Context, string, string) (*model.Order, error)
	UncompleteFn  func(context.Context, string) (*model.Order, error)
	ReassignFn    func(context.Context, string, string) (*model.Order, error)
	VoidFn        func(context.Context, string) (*model.Order, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, orderNumber, walletType, points, ordererName)
	}
	return &model.Order{OrderNumber: orderNumber, WalletType: walletType, Points: points, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

func (s OrderFacadeStub) Claim(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, orderID, workerID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusInProgress, ClaimedBy: &workerID}, nil
}

func (s OrderFacadeStub) Complete(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, orderID, workerID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCompleted, ClaimedBy: &workerID}, nil
}

func (s OrderFacadeStub) Uncomplete(ctx context.Context, orderID string) (*model.Order, error) {
	if s.UncompleteFn != nil {
		return s.UncompleteFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Reassign(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	if s.ReassignFn != nil {
		return s.ReassignFn(ctx, orderID, workerID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCompleted, ClaimedBy: &workerID}, nil
}

func (s OrderFacadeStub) Void(ctx context.Context, orderID string) (*model.Order, error) {
	if s.VoidFn != nil {
		return s.VoidFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusVoid}, nil
}

// MetricsFacadeStub allows handler tests to customize metrics queries.
type MetricsFacadeStub struct {
	SummariesFn func(context.Context, model.DateRange) ([]model.WorkerSummary, error)
	DailyFn     func(context.Context, model.DateRange) ([]model.DayBucket, error)
	OverviewFn  func(context.Context) (model.OverviewStats, error)
}

func (s MetricsFacadeStub) Summaries(ctx context.Context, r model.DateRange) ([]model.WorkerSummary, error) {
	if s.SummariesFn != nil {
		return s.SummariesFn(ctx, r)
	}
	return nil, nil
}

func (s MetricsFacadeStub) Daily(ctx context.Context, r model.DateRange) ([]model.DayBucket, error) {
	if s.DailyFn != nil {
		return s.DailyFn(ctx, r)
	}
	return nil, nil
}

func (s MetricsFacadeStub) Overview(ctx context.Context) (model.OverviewStats, error) {
	if s.OverviewFn != nil {
		return s.OverviewFn(ctx)
	}
	return model.OverviewStats{}, nil
}

// WorkerFacadeStub allows handler tests to customize roster operations.
type WorkerFacadeStub struct {
	WorkersFn         func(context.Context) ([]model.Worker, error)
	AddWorkerFn       func(context.Context, string) (*model.Worker, bool, error)
	SetWorkerActiveFn func(context.Context, string, bool) (*model.Worker, error)
}

func (s WorkerFacadeStub) Workers(ctx context.Context) ([]model.Worker, error) {
	if s.WorkersFn != nil {
		return s.WorkersFn(ctx)
	}
	return nil, nil
}

func (s WorkerFacadeStub) AddWorker(ctx context.Context, name string) (*model.Worker, bool, error) {
	if s.AddWorkerFn != nil {
		return s.AddWorkerFn(ctx, name)
	}
	return &model.Worker{ID: "worker-1", Name: name, IsActive: true}, true, nil
}

func (s WorkerFacadeStub) SetWorkerActive(ctx context.Context, id string, active bool) (*model.Worker, error) {
	if s.SetWorkerActiveFn != nil {
		return s.SetWorkerActiveFn(ctx, id, active)
	}
	return &model.Worker{ID: id, IsActive: active}, nil
}

// WorkshopFacadeStub aggregates all facade stubs for router-level tests.
type WorkshopFacadeStub struct {
	OrderFacadeStub
	MetricsFacadeStub
	WorkerFacadeStub
}
