package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/model/stop"
	"tms/internal/core/domain/services"
	"tms/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the order number from the tenant's sequence, persists the order
// and its initial stops atomically, writes the creation ledger entry, and
// publishes order.created after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command. Either the order, all of its
// stops, and the ledger entry are persisted, or nothing is.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	numbers, err := services.NewNumberGenerator(uow.SequenceRepository())
	if err != nil {
		return err
	}

	orderNumber, err := numbers.NextOrderNumber(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.TenantID(), cmd.CustomerID(), orderNumber,
		cmd.Rate(), cmd.FuelSurcharge(), cmd.Accessorials(), cmd.CustomFields(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	stopRepo := uow.StopRepository()
	for i, input := range cmd.Stops() {
		newStop, stopErr := stop.NewStop(
			input.StopID, cmd.TenantID(), cmd.OrderID(),
			input.StopType, i+1,
			input.Address, input.City, input.State,
		)
		if stopErr != nil {
			return stopErr
		}

		if stopErr = stopRepo.Add(ctx, newStop); stopErr != nil {
			return stopErr
		}
	}

	if err = appendHistory(ctx, uow.HistoryRepository(),
		cmd.TenantID(), order.EntityType, cmd.OrderID(),
		"", newOrder.Status().String(), "Order created", time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.OrderCreated{
		OrderID:  cmd.OrderID().String(),
		TenantID: cmd.TenantID().String(),
	})

	return nil
}
