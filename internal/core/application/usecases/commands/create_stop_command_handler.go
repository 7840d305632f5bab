package commands

import (
	"context"

	"tms/internal/core/domain/model/stop"
)

// CreateStopCommandHandler adds a stop to an existing order, keeping the
// order's stop sequences contiguous 1..N. An explicit sequence past the end
// is clamped to append.
type CreateStopCommandHandler struct {
	uowFactory StopUoWFactory
}

// NewCreateStopCommandHandler creates a handler for stop creation.
func NewCreateStopCommandHandler(uowFactory StopUoWFactory) CreateStopCommandHandler {
	return CreateStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop creation command.
func (h CreateStopCommandHandler) Handle(ctx context.Context, cmd CreateStopCommand) error {
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

	stopRepo := uow.StopRepository()
	siblings, err := stopRepo.GetByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	sequence := len(siblings) + 1
	if cmd.Sequence() != nil && *cmd.Sequence() <= len(siblings) {
		sequence = *cmd.Sequence()
		for _, sibling := range siblings {
			if sibling.Sequence() < sequence {
				continue
			}
			if err = sibling.Resequence(sibling.Sequence() + 1); err != nil {
				return err
			}
			if err = stopRepo.Update(ctx, sibling); err != nil {
				return err
			}
		}
	}

	newStop, err := stop.NewStop(
		cmd.StopID(), cmd.TenantID(), cmd.OrderID(),
		cmd.StopType(), sequence,
		cmd.Address(), cmd.City(), cmd.State(),
	)
	if err != nil {
		return err
	}

	if err = stopRepo.Add(ctx, newStop); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
