package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/model/stop"
)

func restoreStopForOrder(t *testing.T, tenantID, orderID kernel.UUID, stopType stop.Type, seq int, arrived bool) *stop.Stop {
	t.Helper()
	var arrivedAt *time.Time
	status := stop.StatusPending
	if arrived {
		at := time.Now().UTC().Add(-time.Hour)
		arrivedAt = &at
		status = stopType.ArrivalStatus()
	}
	s, err := stop.RestoreStop(kernel.NewUUID(), tenantID, orderID,
		stopType, seq, status, "1 Dock Rd", "Tulsa", "OK", arrivedAt, nil, "", "")
	require.NoError(t, err)
	return s
}

func TestMarkStopDepartedCommandHandler_Handle_LastStopDeliversOrder(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()

	pickup := restoreStopForOrder(t, tenantID, orderID, stop.TypePickup, 1, true)
	require.NoError(t, pickup.MarkDeparted(time.Now().UTC().Add(-30*time.Minute), "", ""))
	delivery := restoreStopForOrder(t, tenantID, orderID, stop.TypeDelivery, 2, true)

	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusAtDelivery)

	cmd, err := commands.NewMarkStopDepartedCommand(delivery.ID(), tenantID, "R. Chen", "clean delivery")
	require.NoError(t, err)

	stopRepo := new(MockStopRepository)
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockStopUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	stopRepo.On("Get", mock.Anything, tenantID, delivery.ID()).Return(delivery, nil).Once()
	stopRepo.On("Update", mock.Anything, delivery).Return(nil).Once()
	stopRepo.On("GetByOrder", mock.Anything, tenantID, orderID).
		Return([]*stop.Stop{pickup, delivery}, nil).Once()
	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(owner, nil).Once()
	orderRepo.On("Update", mock.Anything, owner).Return(nil).Once()
	historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*history.Record")).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewMarkStopDepartedCommandHandler(fakeStopUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, stop.StatusCompleted, delivery.Status())
	assert.Equal(t, "R. Chen", delivery.SignedBy())
	assert.Equal(t, order.StatusDelivered, owner.Status())
	assert.Equal(t, []string{"stop.departed", "stop.completed"}, publisher.Names())
	uow.AssertExpectations(t)
}

func TestMarkStopDepartedCommandHandler_Handle_RemainingStopsKeepOrderInTransit(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()

	pickup := restoreStopForOrder(t, tenantID, orderID, stop.TypePickup, 1, true)
	delivery := restoreStopForOrder(t, tenantID, orderID, stop.TypeDelivery, 2, false)

	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusAtPickup)

	cmd, err := commands.NewMarkStopDepartedCommand(pickup.ID(), tenantID, "", "")
	require.NoError(t, err)

	stopRepo := new(MockStopRepository)
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockStopUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	stopRepo.On("Get", mock.Anything, tenantID, pickup.ID()).Return(pickup, nil).Once()
	stopRepo.On("Update", mock.Anything, pickup).Return(nil).Once()
	stopRepo.On("GetByOrder", mock.Anything, tenantID, orderID).
		Return([]*stop.Stop{pickup, delivery}, nil).Once()
	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(owner, nil).Once()
	orderRepo.On("Update", mock.Anything, owner).Return(nil).Once()
	historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*history.Record")).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewMarkStopDepartedCommandHandler(fakeStopUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusInTransit, owner.Status())
	assert.Equal(t, []string{"stop.departed"}, publisher.Names())
}

func TestMarkStopDepartedCommandHandler_Handle_WithoutArrival(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	pending := restoreStopForOrder(t, tenantID, orderID, stop.TypePickup, 1, false)

	cmd, err := commands.NewMarkStopDepartedCommand(pending.ID(), tenantID, "", "")
	require.NoError(t, err)

	stopRepo := new(MockStopRepository)
	uow := new(MockStopUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	stopRepo.On("Get", mock.Anything, tenantID, pending.ID()).Return(pending, nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewMarkStopDepartedCommandHandler(fakeStopUoWFactory{uow: uow}, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, stop.ErrStopNotArrived)
	assert.Empty(t, publisher.published)
	uow.AssertNotCalled(t, "Commit", ctx)
}
