package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

// ErrNoCarrierAssignedLoad is returned when dispatching an order none of
// whose loads has a carrier.
var ErrNoCarrierAssignedLoad = errs.NewConflictError("order has no load with an assigned carrier")

// DispatchOrderCommandHandler moves an order to DISPATCHED. The transition
// table rejects orders past QUOTED; the handler additionally requires at
// least one load with a carrier, so an order never dispatches with nobody
// to haul it.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order dispatch command.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	loads, err := uow.LoadRepository().GetByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	hasCarrier := false
	for _, l := range loads {
		if l.HasCarrier() {
			hasCarrier = true
			break
		}
	}
	if !hasCarrier {
		return ErrNoCarrierAssignedLoad
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(order.StatusDispatched); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.HistoryRepository(),
		cmd.TenantID(), order.EntityType, cmd.OrderID(),
		oldStatus.String(), aggregate.Status().String(), "Order dispatched", time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.OrderStatusChanged{
		OrderID:   cmd.OrderID().String(),
		OldStatus: oldStatus.String(),
		NewStatus: aggregate.Status().String(),
		TenantID:  cmd.TenantID().String(),
	})

	return nil
}
