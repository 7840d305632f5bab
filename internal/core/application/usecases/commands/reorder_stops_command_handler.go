package commands

import (
	"context"

	"tms/internal/pkg/errs"
)

// ErrStopSetMismatch is returned when the reorder list does not contain
// exactly the order's stops.
var ErrStopSetMismatch = errs.NewConflictError("stop list does not match the order's stops")

// ReorderStopsCommandHandler rewrites the sequences of an order's stops in
// one transaction, so a failure partway leaves the original route intact.
type ReorderStopsCommandHandler struct {
	uowFactory StopUoWFactory
}

// NewReorderStopsCommandHandler creates a handler for stop reordering.
func NewReorderStopsCommandHandler(uowFactory StopUoWFactory) ReorderStopsCommandHandler {
	return ReorderStopsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command.
func (h ReorderStopsCommandHandler) Handle(ctx context.Context, cmd ReorderStopsCommand) error {
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
	stops, err := stopRepo.GetByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if len(stops) != len(cmd.StopIDs()) {
		return ErrStopSetMismatch
	}

	byID := make(map[string]int, len(stops))
	for i, s := range stops {
		byID[s.ID().String()] = i
	}

	for position, stopID := range cmd.StopIDs() {
		i, ok := byID[stopID.String()]
		if !ok {
			return ErrStopSetMismatch
		}

		if err = stops[i].Resequence(position + 1); err != nil {
			return err
		}
		if err = stopRepo.Update(ctx, stops[i]); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
