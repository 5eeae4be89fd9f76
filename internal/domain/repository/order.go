package repository

import (
	"context"

	"sewtrack/internal/domain/model"
)

// OrderRepository describes persistence operations with the order ledger.
// ApplyTransition is the single mutation path: a conditional update keyed by
// the caller's last-observed status, so the ledger serializes concurrent
// writers and losers see a stale-state failure.
type OrderRepository interface {
	Create(ctx context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ApplyTransition(ctx context.Context, id string, expected model.OrderStatus, patch model.OrderPatch) (*model.Order, error)
}
