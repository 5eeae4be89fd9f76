package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	"sewtrack/internal/domain/repository"
)

// LifecycleUseCase owns the order state machine. Every mutation is applied as
// a single conditional write keyed by the last-observed status, so two actors
// racing on the same order resolve to exactly one winner; the loser gets
// ErrStaleState and must re-fetch before retrying.
type LifecycleUseCase struct {
	orders repository.OrderRepository
	assign *AssignmentResolver
	clock  func() time.Time
}

// NewLifecycleUseCase constructs LifecycleUseCase.
func NewLifecycleUseCase(orders repository.OrderRepository, assign *AssignmentResolver) *LifecycleUseCase {
	return &LifecycleUseCase{orders: orders, assign: assign, clock: time.Now}
}

// Register ingests a new order into the ledger in pending state.
func (u *LifecycleUseCase) Register(ctx context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" || points < 0 {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.Create(ctx, orderNumber, walletType, points, ordererName)
}

// Get returns the current record for a single order.
func (u *LifecycleUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// List returns the full ledger snapshot.
func (u *LifecycleUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Claim moves a pending order to in-progress under the given worker.
func (u *LifecycleUseCase) Claim(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	worker, err := u.assign.Resolve(ctx, workerID)
	if err != nil {
		return nil, err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	patch, err := claimPatch(order, worker.ID, u.clock())
	if err != nil {
		return nil, err
	}
	return u.orders.ApplyTransition(ctx, order.ID, order.Status, patch)
}

// Complete finishes an order, claiming it for the worker if it was still
// unclaimed. Workers self-assign by completing.
func (u *LifecycleUseCase) Complete(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	worker, err := u.assign.Resolve(ctx, workerID)
	if err != nil {
		return nil, err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	patch, err := completePatch(order, worker.ID, u.clock())
	if err != nil {
		return nil, err
	}
	return u.orders.ApplyTransition(ctx, order.ID, order.Status, patch)
}

// Uncomplete reverts a completed order all the way back to the open pool:
// pending, unclaimed, no timestamps.
func (u *LifecycleUseCase) Uncomplete(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	patch, err := uncompletePatch(order)
	if err != nil {
		return nil, err
	}
	return u.orders.ApplyTransition(ctx, order.ID, order.Status, patch)
}

// Reassign attributes an order to another worker and finalizes it as
// completed. A manager reassigning is also closing the order out under the
// new owner's credit, including when correcting a completed order.
func (u *LifecycleUseCase) Reassign(ctx context.Context, orderID, workerID string) (*model.Order, error) {
	worker, err := u.assign.Resolve(ctx, workerID)
	if err != nil {
		return nil, err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	patch, err := reassignPatch(order, worker.ID, u.clock())
	if err != nil {
		return nil, err
	}
	return u.orders.ApplyTransition(ctx, order.ID, order.Status, patch)
}

// Void terminally cancels an order. Claim and completion fields stay frozen
// as they were; only voided_at is stamped.
func (u *LifecycleUseCase) Void(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	patch, err := voidPatch(order, u.clock())
	if err != nil {
		return nil, err
	}
	return u.orders.ApplyTransition(ctx, order.ID, order.Status, patch)
}

func claimPatch(order *model.Order, workerID string, now time.Time) (model.OrderPatch, error) {
	if order.Status != model.OrderStatusPending {
		return model.OrderPatch{}, domainErrors.ErrInvalidTransition
	}
	return model.OrderPatch{
		Status:    model.OrderStatusInProgress,
		ClaimedBy: &workerID,
		ClaimedAt: &now,
	}, nil
}

func completePatch(order *model.Order, workerID string, now time.Time) (model.OrderPatch, error) {
	if order.Status != model.OrderStatusPending && order.Status != model.OrderStatusInProgress {
		return model.OrderPatch{}, domainErrors.ErrInvalidTransition
	}
	claimedAt := now
	if order.ClaimedAt != nil {
		claimedAt = *order.ClaimedAt
	}
	return model.OrderPatch{
		Status:      model.OrderStatusCompleted,
		ClaimedBy:   &workerID,
		ClaimedAt:   &claimedAt,
		CompletedAt: &now,
	}, nil
}

func uncompletePatch(order *model.Order) (model.OrderPatch, error) {
	if order.Status != model.OrderStatusCompleted {
		return model.OrderPatch{}, domainErrors.ErrInvalidTransition
	}
	return model.OrderPatch{Status: model.OrderStatusPending}, nil
}

func reassignPatch(order *model.Order, workerID string, now time.Time) (model.OrderPatch, error) {
	if order.Status == model.OrderStatusVoid {
		return model.OrderPatch{}, domainErrors.ErrInvalidTransition
	}
	return model.OrderPatch{
		Status:      model.OrderStatusCompleted,
		ClaimedBy:   &workerID,
		ClaimedAt:   &now,
		CompletedAt: &now,
	}, nil
}

func voidPatch(order *model.Order, now time.Time) (model.OrderPatch, error) {
	if order.Status == model.OrderStatusVoid {
		return model.OrderPatch{}, domainErrors.ErrInvalidTransition
	}
	return model.OrderPatch{
		Status:      model.OrderStatusVoid,
		ClaimedBy:   order.ClaimedBy,
		ClaimedAt:   order.ClaimedAt,
		CompletedAt: order.CompletedAt,
		VoidedAt:    &now,
	}, nil
}
