package test

import (
	"context"
	"sync/atomic"
)

// ChangeSourceStub is an inert change feed source for graph wiring tests.
type ChangeSourceStub struct {
	ListenErr error
	WaitErr   error
	closed    atomic.Bool
}

func (s *ChangeSourceStub) Listen(context.Context) error {
	return s.ListenErr
}

func (s *ChangeSourceStub) WaitForEvent(ctx context.Context) error {
	if s.WaitErr != nil {
		return s.WaitErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *ChangeSourceStub) Close(context.Context) error {
	s.closed.Store(true)
	return nil
}

// Closed reports whether Close has been called.
func (s *ChangeSourceStub) Closed() bool {
	return s.closed.Load()
}
