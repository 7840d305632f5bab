package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/pkg/errs"
)

func TestUpdateOrderCommandHandler_Handle_ChargeChangeRecomputesTotal(t *testing.T) {
	ctx := t.Context()
	orderID, tenantID := kernel.NewUUID(), kernel.NewUUID()

	newRate := 1200.0
	cmd, err := commands.NewUpdateOrderCommand(orderID, tenantID, nil, &newRate, nil, nil, nil)
	require.NoError(t, err)

	aggregate := restoreOrderInStatus(t, orderID, tenantID, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewUpdateOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.InDelta(t, 1200.0, aggregate.Rate(), 0.001)
	assert.InDelta(t, 50.0, aggregate.FuelSurcharge(), 0.001)
	assert.InDelta(t, 1250.0, aggregate.TotalCharges(), 0.001)
	assert.Equal(t, []string{"order.updated"}, publisher.Names())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StatusChangeIsRecorded(t *testing.T) {
	ctx := t.Context()
	orderID, tenantID := kernel.NewUUID(), kernel.NewUUID()

	target := order.StatusQuoted
	cmd, err := commands.NewUpdateOrderCommand(orderID, tenantID, &target, nil, nil, nil, nil)
	require.NoError(t, err)

	aggregate := restoreOrderInStatus(t, orderID, tenantID, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*history.Record")).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewUpdateOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusQuoted, aggregate.Status())
	assert.Equal(t, []string{"order.status.changed"}, publisher.Names())
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StaleStatusIsRejected(t *testing.T) {
	ctx := t.Context()
	orderID, tenantID := kernel.NewUUID(), kernel.NewUUID()

	// The caller saw PENDING and asks for QUOTED, but the persisted order is
	// already DELIVERED. The transition table has no DELIVERED -> QUOTED edge.
	target := order.StatusQuoted
	cmd, err := commands.NewUpdateOrderCommand(orderID, tenantID, &target, nil, nil, nil, nil)
	require.NoError(t, err)

	aggregate := restoreOrderInStatus(t, orderID, tenantID, order.StatusDelivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(aggregate, nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewUpdateOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStatusTransitionNotAllowed)
	assert.Equal(t, order.StatusDelivered, aggregate.Status())
	assert.Empty(t, publisher.published)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
