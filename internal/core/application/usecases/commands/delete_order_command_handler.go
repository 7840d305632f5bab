package commands

import (
	"context"

	"tms/internal/core/domain/model/order"
	"tms/internal/pkg/errs"
)

// Deletion guard errors. Both map to a conflict: the order's current state
// forbids the operation, not its input.
var (
	ErrOrderHasLoads       = errs.NewConflictError("order still has loads")
	ErrOrderIsNotDeletable = errs.NewConflictError("order can only be deleted while PENDING or CANCELLED")
)

// DeleteOrderCommandHandler removes an order and its stops. An order that
// has loads, or that progressed past PENDING without being cancelled, stays.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.StatusPending && aggregate.Status() != order.StatusCancelled {
		return ErrOrderIsNotDeletable
	}

	loads, err := uow.LoadRepository().GetByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}
	if len(loads) > 0 {
		return ErrOrderHasLoads
	}

	stopRepo := uow.StopRepository()
	stops, err := stopRepo.GetByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}
	for _, s := range stops {
		if err = stopRepo.Delete(ctx, cmd.TenantID(), s.ID()); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, cmd.TenantID(), cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
