package model

import "time"

// Worker represents a sewer who claims and completes orders. Workers are
// soft-deleted: IsActive=false removes them from the eligible pool without
// breaking historical order references.
type Worker struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
