package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
)

// UpdateLoadCommandHandler applies partial updates to a load. A status
// change goes through the transition table; a move into DELIVERED stamps
// deliveredAt and additionally publishes load.delivered. Plain field
// updates emit no events.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateLoadCommandHandler creates a handler for load update operations.
func NewUpdateLoadCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the load update command.
func (h UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) error {
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
	if cmd.Status() != nil && *cmd.Status() != oldStatus {
		if err = aggregate.ChangeStatus(*cmd.Status(), time.Now().UTC()); err != nil {
			return err
		}
	}

	if cmd.DriverName() != nil || cmd.DriverPhone() != nil || cmd.EquipmentType() != nil {
		driverName := aggregate.DriverName()
		driverPhone := aggregate.DriverPhone()
		equipmentType := aggregate.EquipmentType()
		if cmd.DriverName() != nil {
			driverName = *cmd.DriverName()
		}
		if cmd.DriverPhone() != nil {
			driverPhone = *cmd.DriverPhone()
		}
		if cmd.EquipmentType() != nil {
			equipmentType = *cmd.EquipmentType()
		}
		aggregate.UpdateDriverDetails(driverName, driverPhone, equipmentType)
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	statusChanged := aggregate.Status() != oldStatus
	if statusChanged {
		if err = appendHistory(ctx, uow.HistoryRepository(),
			cmd.TenantID(), load.EntityType, cmd.LoadID(),
			oldStatus.String(), aggregate.Status().String(), "Load updated", time.Now().UTC(),
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !statusChanged {
		return nil
	}

	evts := []events.DomainEvent{
		events.LoadStatusChanged{
			LoadID:    cmd.LoadID().String(),
			OldStatus: oldStatus.String(),
			NewStatus: aggregate.Status().String(),
			TenantID:  cmd.TenantID().String(),
		},
	}
	if aggregate.Status() == load.StatusDelivered {
		evts = append(evts, events.LoadDelivered{
			LoadID:   cmd.LoadID().String(),
			OrderID:  aggregate.OrderID().String(),
			TenantID: cmd.TenantID().String(),
		})
	}
	h.publisher.Publish(ctx, evts...)

	return nil
}
