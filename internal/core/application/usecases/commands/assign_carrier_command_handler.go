package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/carrier"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
)

// AssignCarrierCommandHandler tenders a load to a carrier. The carrier must
// exist within the tenant and be active. Assigning a different carrier to an
// already ASSIGNED load replaces the assignment without a status change.
type AssignCarrierCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
func NewAssignCarrierCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the carrier assignment command.
func (h AssignCarrierCommandHandler) Handle(ctx context.Context, cmd AssignCarrierCommand) error {
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

	assignee, err := uow.CarrierRepository().Get(ctx, cmd.TenantID(), cmd.CarrierID())
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return carrier.ErrCarrierIsNotActive
	}

	oldStatus := aggregate.Status()
	if err = aggregate.AssignCarrier(
		cmd.CarrierID(), cmd.DriverName(), cmd.DriverPhone(), cmd.EquipmentType(),
	); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	statusChanged := aggregate.Status() != oldStatus
	if statusChanged {
		if err = appendHistory(ctx, uow.HistoryRepository(),
			cmd.TenantID(), load.EntityType, cmd.LoadID(),
			oldStatus.String(), aggregate.Status().String(),
			"Carrier assigned: "+assignee.Name(), time.Now().UTC(),
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	evts := []events.DomainEvent{
		events.LoadAssigned{
			LoadID:    cmd.LoadID().String(),
			CarrierID: cmd.CarrierID().String(),
			TenantID:  cmd.TenantID().String(),
		},
	}
	if statusChanged {
		evts = append(evts, events.LoadStatusChanged{
			LoadID:    cmd.LoadID().String(),
			OldStatus: oldStatus.String(),
			NewStatus: aggregate.Status().String(),
			TenantID:  cmd.TenantID().String(),
		})
	}
	h.publisher.Publish(ctx, evts...)

	return nil
}
