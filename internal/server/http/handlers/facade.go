package handlers

import (
	"context"

	"sewtrack/internal/domain/model"
)

// OrderFacade encapsulates lifecycle operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Claim(ctx context.Context, orderID, workerID string) (*model.Order, error)
	Complete(ctx context.Context, orderID, workerID string) (*model.Order, error)
	Uncomplete(ctx context.Context, orderID string) (*model.Order, error)
	Reassign(ctx context.Context, orderID, workerID string) (*model.Order, error)
	Void(ctx context.Context, orderID string) (*model.Order, error)
}

// MetricsFacade provides windowed performance queries.
type MetricsFacade interface {
	Summaries(ctx context.Context, r model.DateRange) ([]model.WorkerSummary, error)
	Daily(ctx context.Context, r model.DateRange) ([]model.DayBucket, error)
	Overview(ctx context.Context) (model.OverviewStats, error)
}

// WorkerFacade manages the sewer roster.
type WorkerFacade interface {
	Workers(ctx context.Context) ([]model.Worker, error)
	AddWorker(ctx context.Context, name string) (*model.Worker, bool, error)
	SetWorkerActive(ctx context.Context, id string, active bool) (*model.Worker, error)
}

// WorkshopFacade aggregates the full set of operations used across handlers.
type WorkshopFacade interface {
	OrderFacade
	MetricsFacade
	WorkerFacade
}
