package commands

import (
	"context"

	"tms/internal/core/domain/model/stop"
)

// DeleteStopCommandHandler removes a stop and closes the sequence gap so the
// order's surviving stops are numbered 1..count again.
type DeleteStopCommandHandler struct {
	uowFactory StopUoWFactory
}

// NewDeleteStopCommandHandler creates a handler for stop deletion.
func NewDeleteStopCommandHandler(uowFactory StopUoWFactory) DeleteStopCommandHandler {
	return DeleteStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop deletion command.
func (h DeleteStopCommandHandler) Handle(ctx context.Context, cmd DeleteStopCommand) error {
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

	if !aggregate.IsDeletable() {
		return stop.ErrStopIsNotDeletable
	}

	if err = stopRepo.Delete(ctx, cmd.TenantID(), cmd.StopID()); err != nil {
		return err
	}

	survivors, err := stopRepo.GetByOrder(ctx, cmd.TenantID(), aggregate.OrderID())
	if err != nil {
		return err
	}

	for i, survivor := range survivors {
		if survivor.Sequence() == i+1 {
			continue
		}
		if err = survivor.Resequence(i + 1); err != nil {
			return err
		}
		if err = stopRepo.Update(ctx, survivor); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
