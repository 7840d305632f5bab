package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to an order. Status
// changes go through the transition table and land in the ledger; charge
// changes recompute the total.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order update command. Publishes order.status.changed
// when the status moved, order.updated otherwise.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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
	if cmd.Status() != nil && *cmd.Status() != oldStatus {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if cmd.HasChargeChange() {
		rate := aggregate.Rate()
		fuel := aggregate.FuelSurcharge()
		accessorials := aggregate.Accessorials()
		if cmd.Rate() != nil {
			rate = *cmd.Rate()
		}
		if cmd.FuelSurcharge() != nil {
			fuel = *cmd.FuelSurcharge()
		}
		if cmd.Accessorials() != nil {
			accessorials = *cmd.Accessorials()
		}
		aggregate.SetCharges(rate, fuel, accessorials)
	}

	if cmd.CustomFields() != nil {
		aggregate.SetCustomFields(cmd.CustomFields())
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	statusChanged := aggregate.Status() != oldStatus
	if statusChanged {
		if err = appendHistory(ctx, uow.HistoryRepository(),
			cmd.TenantID(), order.EntityType, cmd.OrderID(),
			oldStatus.String(), aggregate.Status().String(), "Order updated", time.Now().UTC(),
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if statusChanged {
		h.publisher.Publish(ctx, events.OrderStatusChanged{
			OrderID:   cmd.OrderID().String(),
			OldStatus: oldStatus.String(),
			NewStatus: aggregate.Status().String(),
			TenantID:  cmd.TenantID().String(),
		})
	} else {
		h.publisher.Publish(ctx, events.OrderUpdated{
			OrderID:  cmd.OrderID().String(),
			TenantID: cmd.TenantID().String(),
		})
	}

	return nil
}
