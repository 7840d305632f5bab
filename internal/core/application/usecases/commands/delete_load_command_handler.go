package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
)

// ErrLoadIsNotDeletable is returned when deleting a load that has progressed
// past PENDING without being cancelled.
var ErrLoadIsNotDeletable = errs.NewConflictError("load can only be deleted while PENDING or CANCELLED")

// DeleteLoadCommandHandler removes a load. The ledger keeps a final entry
// recording the load as CANCELLED, so the trail survives the row.
type DeleteLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewDeleteLoadCommandHandler creates a handler for load deletion.
func NewDeleteLoadCommandHandler(uowFactory LoadUoWFactory) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load deletion command.
func (h DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) error {
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

	if !aggregate.Status().IsDeletable() {
		return ErrLoadIsNotDeletable
	}

	// Already-cancelled loads still get their final entry, with the status
	// unchanged, so every deletion leaves a ledger trace.
	if err = appendHistory(ctx, uow.HistoryRepository(),
		cmd.TenantID(), load.EntityType, cmd.LoadID(),
		aggregate.Status().String(), load.StatusCancelled.String(),
		"Load deleted", time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = loadRepo.Delete(ctx, cmd.TenantID(), cmd.LoadID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
