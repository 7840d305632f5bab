package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/ports"
)

// MarkStopDepartedCommandHandler records departure from a stop and derives
// the owning order's status inside the same transaction: DELIVERED when no
// undeparted stops remain, IN_TRANSIT otherwise. Counting and cascading in
// one transaction keeps two concurrent departures from both concluding the
// order is still in transit.
type MarkStopDepartedCommandHandler struct {
	uowFactory StopUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkStopDepartedCommandHandler creates a handler for stop departures.
func NewMarkStopDepartedCommandHandler(uowFactory StopUoWFactory, publisher ports.EventPublisher) MarkStopDepartedCommandHandler {
	return MarkStopDepartedCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the stop departure command.
func (h MarkStopDepartedCommandHandler) Handle(ctx context.Context, cmd MarkStopDepartedCommand) error {
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

	now := time.Now().UTC()
	if err = aggregate.MarkDeparted(now, cmd.SignedBy(), cmd.Notes()); err != nil {
		return err
	}

	if err = stopRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	siblings, err := stopRepo.GetByOrder(ctx, cmd.TenantID(), aggregate.OrderID())
	if err != nil {
		return err
	}

	remaining := 0
	for _, sibling := range siblings {
		if sibling.ID().IsEqual(aggregate.ID()) {
			continue
		}
		if !sibling.HasDeparted() {
			remaining++
		}
	}

	derived := order.StatusInTransit
	if remaining == 0 {
		derived = order.StatusDelivered
	}

	orderRepo := uow.OrderRepository()
	owner, err := orderRepo.Get(ctx, cmd.TenantID(), aggregate.OrderID())
	if err != nil {
		return err
	}

	oldOrderStatus := owner.Status()
	if err = owner.CascadeStatus(derived); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, owner); err != nil {
		return err
	}

	if owner.Status() != oldOrderStatus {
		if err = appendHistory(ctx, uow.HistoryRepository(),
			cmd.TenantID(), order.EntityType, owner.ID(),
			oldOrderStatus.String(), owner.Status().String(),
			"Departed stop", now,
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	evts := []events.DomainEvent{
		events.StopDeparted{
			StopID:   cmd.StopID().String(),
			OrderID:  aggregate.OrderID().String(),
			TenantID: cmd.TenantID().String(),
		},
	}
	if remaining == 0 {
		evts = append(evts, events.StopCompleted{
			OrderID:  aggregate.OrderID().String(),
			TenantID: cmd.TenantID().String(),
		})
	}
	h.publisher.Publish(ctx, evts...)

	return nil
}
