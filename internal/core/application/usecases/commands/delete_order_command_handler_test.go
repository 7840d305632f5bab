package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/model/stop"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusCancelled)
	orphan := restoreStopForOrder(t, tenantID, orderID, stop.TypePickup, 1, false)

	cmd, err := commands.NewDeleteOrderCommand(orderID, tenantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	loadRepo := new(MockLoadRepository)
	stopRepo := new(MockStopRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(owner, nil).Once()
	loadRepo.On("GetByOrder", mock.Anything, tenantID, orderID).Return([]*load.Load{}, nil).Once()
	stopRepo.On("GetByOrder", mock.Anything, tenantID, orderID).
		Return([]*stop.Stop{orphan}, nil).Once()
	stopRepo.On("Delete", mock.Anything, tenantID, orphan.ID()).Return(nil).Once()
	orderRepo.On("Delete", mock.Anything, tenantID, orderID).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(fakeOrderUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderWithLoadsIsRejected(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusPending)

	attached, err := load.NewLoad(kernel.NewUUID(), tenantID, orderID, "LD2026090031")
	require.NoError(t, err)

	cmd, err := commands.NewDeleteOrderCommand(orderID, tenantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	loadRepo := new(MockLoadRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(owner, nil).Once()
	loadRepo.On("GetByOrder", mock.Anything, tenantID, orderID).
		Return([]*load.Load{attached}, nil).Once()

	h := commands.NewDeleteOrderCommandHandler(fakeOrderUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderHasLoads)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_DispatchedOrderIsRejected(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusDispatched)

	cmd, err := commands.NewDeleteOrderCommand(orderID, tenantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(owner, nil).Once()

	h := commands.NewDeleteOrderCommandHandler(fakeOrderUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderIsNotDeletable)
	assert.Equal(t, order.StatusDispatched, owner.Status())
}
