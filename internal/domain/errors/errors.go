package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrStaleState        = errors.New("stale state")
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrInactiveWorker    = errors.New("inactive worker")
	ErrValidation        = errors.New("validation failed")
)
