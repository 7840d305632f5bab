package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/ports"
)

// MarkStopArrivedCommandHandler records arrival at a stop and cascades the
// matching AT_PICKUP or AT_DELIVERY status onto the owning order in the same
// transaction.
type MarkStopArrivedCommandHandler struct {
	uowFactory StopUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkStopArrivedCommandHandler creates a handler for stop arrivals.
func NewMarkStopArrivedCommandHandler(uowFactory StopUoWFactory, publisher ports.EventPublisher) MarkStopArrivedCommandHandler {
	return MarkStopArrivedCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the stop arrival command. Re-arrival is a conflict and
// leaves both the stop and the order untouched.
func (h MarkStopArrivedCommandHandler) Handle(ctx context.Context, cmd MarkStopArrivedCommand) error {
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

	stopRepo := uow.StopRepository()
	aggregate, err := stopRepo.Get(ctx, cmd.TenantID(), cmd.StopID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.MarkArrived(now); err != nil {
		return err
	}

	if err = stopRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	owner, err := orderRepo.Get(ctx, cmd.TenantID(), aggregate.OrderID())
	if err != nil {
		return err
	}

	oldOrderStatus := owner.Status()
	if err = owner.CascadeStatus(order.Status(aggregate.Status())); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, owner); err != nil {
		return err
	}

	if owner.Status() != oldOrderStatus {
		if err = appendHistory(ctx, uow.HistoryRepository(),
			cmd.TenantID(), order.EntityType, owner.ID(),
			oldOrderStatus.String(), owner.Status().String(),
			"Arrived at stop", now,
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.StopArrived{
		StopID:   cmd.StopID().String(),
		OrderID:  aggregate.OrderID().String(),
		TenantID: cmd.TenantID().String(),
	})

	return nil
}
