package test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
)

// OrderStoreStub is an in-memory order ledger with the same conditional
// update semantics as the real store: ApplyTransition only succeeds when the
// expected status still matches, so concurrency tests exercise real
// lose-the-race behaviour.
type OrderStoreStub struct {
	mu     sync.Mutex
	orders map[string]model.Order
	seq    int
	Err    error
}

// NewOrderStoreStub constructs an empty stub ledger.
func NewOrderStoreStub() *OrderStoreStub {
	return &OrderStoreStub{orders: make(map[string]model.Order)}
}

// Put seeds an order directly, bypassing lifecycle rules.
func (s *OrderStoreStub) Put(o model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

// Create inserts a pending order with a generated id.
func (s *OrderStoreStub) Create(_ context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.seq++
	order := model.Order{
		ID:          "order-" + strconv.Itoa(s.seq),
		OrderNumber: orderNumber,
		WalletType:  walletType,
		Points:      points,
		Status:      model.OrderStatusPending,
		OrdererName: ordererName,
		CreatedAt:   time.Now(),
	}
	s.orders[order.ID] = order
	return &order, nil
}

// GetByID returns a copy of the stored order.
func (s *OrderStoreStub) GetByID(_ context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

// List returns all orders, newest first.
func (s *OrderStoreStub) List(_ context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// ApplyTransition performs the compare-and-swap write.
func (s *OrderStoreStub) ApplyTransition(_ context.Context, id string, expected model.OrderStatus, patch model.OrderPatch) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != expected {
		return nil, domainErrors.ErrStaleState
	}
	o.Status = patch.Status
	o.ClaimedBy = patch.ClaimedBy
	o.ClaimedAt = patch.ClaimedAt
	o.CompletedAt = patch.CompletedAt
	o.VoidedAt = patch.VoidedAt
	s.orders[id] = o
	return &o, nil
}

// WorkerRepositoryStub stores workers in-memory with name re-linking.
type WorkerRepositoryStub struct {
	mu      sync.Mutex
	workers map[string]model.Worker
	seq     int
	Err     error
}

// NewWorkerRepositoryStub constructs an empty roster stub.
func NewWorkerRepositoryStub() *WorkerRepositoryStub {
	return &WorkerRepositoryStub{workers: make(map[string]model.Worker)}
}

// Put seeds a worker directly.
func (s *WorkerRepositoryStub) Put(w model.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers[w.ID] = w
}

// Create adds a worker or reactivates a deactivated namesake.
func (s *WorkerRepositoryStub) Create(_ context.Context, name string) (*model.Worker, bool, error) {
	if s.Err != nil {
		return nil, false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, w := range s.workers {
		if w.Name != name {
			continue
		}
		if w.IsActive {
			return nil, false, domainErrors.ErrAlreadyExists
		}
		w.IsActive = true
		s.workers[id] = w
		return &w, false, nil
	}
	s.seq++
	worker := model.Worker{
		ID:        "worker-" + strconv.Itoa(s.seq),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	s.workers[worker.ID] = worker
	return &worker, true, nil
}

// GetByID returns a copy of the stored worker.
func (s *WorkerRepositoryStub) GetByID(_ context.Context, id string) (*model.Worker, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &w, nil
}

// List returns all workers sorted by name.
func (s *WorkerRepositoryStub) List(_ context.Context) ([]model.Worker, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Worker, 0, len(s.workers))
	for _, w := range s.workers {
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// SetActive toggles eligibility of a worker.
func (s *WorkerRepositoryStub) SetActive(_ context.Context, id string, active bool) (*model.Worker, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workers[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	w.IsActive = active
	s.workers[id] = w
	return &w, nil
}
