package model

import "time"

// OrderStatus describes the production lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusVoid       OrderStatus = "void"
)

// Order describes a wallet production task tracked by the workshop.
type Order struct {
	ID          string
	OrderNumber string
	WalletType  string
	Points      int
	Status      OrderStatus
	ClaimedBy   *string
	ClaimedAt   *time.Time
	CompletedAt *time.Time
	VoidedAt    *time.Time
	OrdererName string
	CreatedAt   time.Time
}

// Open reports whether the order still needs production work.
func (o Order) Open() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusInProgress
}

// OrderPatch carries the full set of mutable order fields written by a
// transition. Every transition overwrites all of them, so a nil pointer
// means the column is cleared, not left untouched.
type OrderPatch struct {
	Status      OrderStatus
	ClaimedBy   *string
	ClaimedAt   *time.Time
	CompletedAt *time.Time
	VoidedAt    *time.Time
}
