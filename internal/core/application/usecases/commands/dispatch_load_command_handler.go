package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
)

// DispatchLoadCommandHandler moves a load from ASSIGNED to DISPATCHED.
type DispatchLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchLoadCommandHandler creates a handler for load dispatch.
func NewDispatchLoadCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) DispatchLoadCommandHandler {
	return DispatchLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the load dispatch command.
func (h DispatchLoadCommandHandler) Handle(ctx context.Context, cmd DispatchLoadCommand) error {
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

	loadRepo := uow.LoadRepository()
	aggregate, err := loadRepo.Get(ctx, cmd.TenantID(), cmd.LoadID())
	if err != nil {
		return err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendHistory(ctx, uow.HistoryRepository(),
		cmd.TenantID(), load.EntityType, cmd.LoadID(),
		oldStatus.String(), aggregate.Status().String(), "Load dispatched", time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var carrierID string
	if aggregate.HasCarrier() {
		carrierID = aggregate.CarrierID().String()
	}

	h.publisher.Publish(ctx,
		events.LoadDispatched{
			LoadID:    cmd.LoadID().String(),
			CarrierID: carrierID,
			TenantID:  cmd.TenantID().String(),
		},
		events.LoadStatusChanged{
			LoadID:    cmd.LoadID().String(),
			OldStatus: oldStatus.String(),
			NewStatus: aggregate.Status().String(),
			TenantID:  cmd.TenantID().String(),
		},
	)

	return nil
}
