package dto

import "time"

// CreateWorkerRequest registers or restores a sewer by name.
type CreateWorkerRequest struct {
	Name string `json:"name"`
}

// UpdateWorkerRequest toggles roster eligibility.
type UpdateWorkerRequest struct {
	IsActive *bool `json:"is_active"`
}

// WorkerResponse is the wire form of a roster entry.
type WorkerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
