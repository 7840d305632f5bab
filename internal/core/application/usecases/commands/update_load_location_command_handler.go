package commands

import (
	"context"
	"time"
)

// UpdateLoadLocationCommandHandler applies a direct position report to a
// load through the same position-update path check calls use. No history
// entry and no event: position reports are tracking telemetry, not status
// changes.
type UpdateLoadLocationCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewUpdateLoadLocationCommandHandler creates a handler for position reports.
func NewUpdateLoadLocationCommandHandler(uowFactory LoadUoWFactory) UpdateLoadLocationCommandHandler {
	return UpdateLoadLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
func (h UpdateLoadLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLoadLocationCommand) error {
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

	if err = aggregate.ApplyPositionUpdate(
		cmd.Position(), cmd.City(), cmd.State(), cmd.ETA(), time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
