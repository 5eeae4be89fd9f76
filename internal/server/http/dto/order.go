package dto

import "time"

// CreateOrderRequest is the payload for registering a new order.
type CreateOrderRequest struct {
	OrderNumber string `json:"order_number"`
	WalletType  string `json:"wallet_type"`
	Points      int    `json:"points"`
	OrdererName string `json:"orderer_name,omitempty"`
}

// AssignRequest names the worker a transition acts for. Identity is always
// explicit; there is no ambient session.
type AssignRequest struct {
	WorkerID string `json:"worker_id"`
}

// OrderResponse is the wire form of an order record.
type OrderResponse struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"order_number"`
	WalletType  string     `json:"wallet_type"`
	Points      int        `json:"points"`
	Status      string     `json:"status"`
	ClaimedBy   *string    `json:"claimed_by,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	VoidedAt    *time.Time `json:"voided_at,omitempty"`
	OrdererName string     `json:"orderer_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
