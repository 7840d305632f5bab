package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
)

// AddCheckCallCommandHandler records an immutable check call and refreshes
// the load's tracking fields through the same position-update path that
// direct location reports use. Publishes check-call.received after commit.
type AddCheckCallCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
}

// NewAddCheckCallCommandHandler creates a handler for check call recording.
func NewAddCheckCallCommandHandler(uowFactory LoadUoWFactory, publisher ports.EventPublisher) AddCheckCallCommandHandler {
	return AddCheckCallCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the check call command.
func (h AddCheckCallCommandHandler) Handle(ctx context.Context, cmd AddCheckCallCommand) error {
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

	now := time.Now().UTC()
	checkCall, err := load.NewCheckCall(
		cmd.CheckCallID(), cmd.TenantID(), cmd.LoadID(),
		cmd.Position(), cmd.City(), cmd.State(),
		cmd.StatusNote(), cmd.Notes(), cmd.ETA(),
		cmd.CalledAt(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.CheckCallRepository().Add(ctx, checkCall); err != nil {
		return err
	}

	if err = aggregate.ApplyPositionUpdate(
		cmd.Position(), cmd.City(), cmd.State(), cmd.ETA(), now,
	); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, events.CheckCallReceived{
		LoadID: cmd.LoadID().String(),
		Location: events.Location{
			Lat:   cmd.Position().Lat(),
			Lng:   cmd.Position().Lng(),
			City:  cmd.City(),
			State: cmd.State(),
		},
		ETA:      cmd.ETA(),
		TenantID: cmd.TenantID().String(),
	})

	return nil
}
