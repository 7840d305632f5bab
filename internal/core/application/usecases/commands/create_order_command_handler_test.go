package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/history"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID, tenantID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, tenantID, kernel.NewUUID(),
		1000, 150, 75, nil, validStops())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stopRepo := new(MockStopRepository)
	historyRepo := new(MockHistoryRepository)
	sequenceRepo := new(MockSequenceRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SequenceRepository").Return(sequenceRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("StopRepository").Return(stopRepo).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	sequenceRepo.On("Next", mock.Anything, tenantID, "ORD", mock.AnythingOfType("string")).
		Return(int64(7), nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			assert.Equal(t, order.StatusPending, created.Status())
			assert.Regexp(t, `^ORD\d{6}0007$`, created.OrderNumber())
			assert.Equal(t, float64(1225), created.TotalCharges())
		}).Return(nil).Once()
	stopRepo.On("Add", mock.Anything, mock.AnythingOfType("*stop.Stop")).Return(nil).Twice()
	historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*history.Record")).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*history.Record)
			assert.Empty(t, record.OldStatus())
			assert.Equal(t, "PENDING", record.NewStatus())
		}).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewCreateOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, publisher.published, 1)
	created, ok := publisher.published[0].(events.OrderCreated)
	require.True(t, ok)
	assert.Equal(t, orderID.String(), created.OrderID)
	assert.Equal(t, tenantID.String(), created.TenantID)

	orderRepo.AssertExpectations(t)
	stopRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(fakeOrderUoWFactory{}, new(RecordingPublisher))
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		0, 0, 0, nil, validStops())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sequenceRepo := new(MockSequenceRepository)
	uow := new(MockOrderUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SequenceRepository").Return(sequenceRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	sequenceRepo.On("Next", mock.Anything, mock.Anything, "ORD", mock.AnythingOfType("string")).
		Return(int64(1), nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("insert failed")).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewCreateOrderCommandHandler(fakeOrderUoWFactory{uow: uow}, publisher)
	require.Error(t, h.Handle(ctx, cmd))

	assert.Empty(t, publisher.published)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
