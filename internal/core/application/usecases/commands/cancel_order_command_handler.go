package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order, records the transition in the
// ledger, and publishes order.cancelled plus order.status.changed.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation. Returns order.ErrOrderIsNotCancellable
// when the order's lifecycle no longer permits it.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	oldStatus := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	notes := "Order cancelled"
	if cmd.Reason() != "" {
		notes = "Order cancelled: " + cmd.Reason()
	}
	if err = appendHistory(ctx, uow.HistoryRepository(),
		cmd.TenantID(), order.EntityType, cmd.OrderID(),
		oldStatus.String(), aggregate.Status().String(), notes, time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx,
		events.OrderCancelled{
			OrderID:  cmd.OrderID().String(),
			TenantID: cmd.TenantID().String(),
			Reason:   cmd.Reason(),
		},
		events.OrderStatusChanged{
			OrderID:   cmd.OrderID().String(),
			OldStatus: oldStatus.String(),
			NewStatus: aggregate.Status().String(),
			TenantID:  cmd.TenantID().String(),
		},
	)

	return nil
}
