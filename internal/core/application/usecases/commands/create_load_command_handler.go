package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/domain/services"
	"tms/internal/core/ports"
)

// CreateLoadCommandHandler creates a load in PENDING status. The owning
// order must exist within the tenant; the load number comes from the
// tenant's LD sequence.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateLoadCommandHandler creates a handler for load creation operations.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the load creation command.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), cmd.OrderID()); err != nil {
		return err
	}

	numbers, err := services.NewNumberGenerator(uow.SequenceRepository())
	if err != nil {
		return err
	}

	loadNumber, err := numbers.NextLoadNumber(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	newLoad, err := load.NewLoad(cmd.LoadID(), cmd.TenantID(), cmd.OrderID(), loadNumber)
	if err != nil {
		return err
	}

	if err = uow.LoadRepository().Add(ctx, newLoad); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.HistoryRepository(),
		cmd.TenantID(), load.EntityType, cmd.LoadID(),
		"", newLoad.Status().String(), "Load created", time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.LoadCreated{
		LoadID:   cmd.LoadID().String(),
		OrderID:  cmd.OrderID().String(),
		TenantID: cmd.TenantID().String(),
	})

	return nil
}
