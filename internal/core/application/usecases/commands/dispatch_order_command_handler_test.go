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
)

func TestDispatchOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusQuoted)

	tendered, err := load.NewLoad(kernel.NewUUID(), tenantID, orderID, "LD2026090021")
	require.NoError(t, err)
	require.NoError(t, tendered.AssignCarrier(kernel.NewUUID(), "B. Hale", "", "VAN"))

	cmd, err := commands.NewDispatchOrderCommand(orderID, tenantID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	loadRepo := new(MockLoadRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, tenantID, orderID).Return(owner, nil).Once()
	loadRepo.On("GetByOrder", mock.Anything, tenantID, orderID).
		Return([]*load.Load{tendered}, nil).Once()
	orderRepo.On("Update", mock.Anything, owner).Return(nil).Once()
	historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*history.Record")).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewDispatchOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusDispatched, owner.Status())
	assert.Equal(t, []string{"order.status.changed"}, publisher.Names())
	uow.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_NoCarrierAssignedLoad(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusPending)

	bare, err := load.NewLoad(kernel.NewUUID(), tenantID, orderID, "LD2026090022")
	require.NoError(t, err)

	cmd, err := commands.NewDispatchOrderCommand(orderID, tenantID)
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
		Return([]*load.Load{bare}, nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewDispatchOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoCarrierAssignedLoad)
	assert.Equal(t, order.StatusPending, owner.Status())
	assert.Empty(t, publisher.published)
}

func TestDispatchOrderCommandHandler_Handle_InvoicedOrderIsRejected(t *testing.T) {
	ctx := t.Context()
	tenantID, orderID := kernel.NewUUID(), kernel.NewUUID()
	owner := restoreOrderInStatus(t, orderID, tenantID, order.StatusInvoiced)

	tendered, err := load.NewLoad(kernel.NewUUID(), tenantID, orderID, "LD2026090023")
	require.NoError(t, err)
	require.NoError(t, tendered.AssignCarrier(kernel.NewUUID(), "B. Hale", "", "VAN"))

	cmd, err := commands.NewDispatchOrderCommand(orderID, tenantID)
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
		Return([]*load.Load{tendered}, nil).Once()

	h := commands.NewDispatchOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, new(RecordingPublisher))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.StatusInvoiced, owner.Status())
}
