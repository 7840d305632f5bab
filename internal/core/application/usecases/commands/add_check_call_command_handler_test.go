package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
)

func TestAddCheckCallCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	loadID, tenantID := kernel.NewUUID(), kernel.NewUUID()
	position, err := kernel.NewGeoPoint(35.15, -90.05)
	require.NoError(t, err)
	eta := time.Now().UTC().Add(6 * time.Hour)
	calledAt := time.Now().UTC().Add(-10 * time.Minute)

	cmd, err := commands.NewAddCheckCallCommand(
		kernel.NewUUID(), loadID, tenantID,
		position, "Memphis", "TN", "Rolling on I-40", "driver called in", &eta, calledAt,
	)
	require.NoError(t, err)

	aggregate, err := load.NewLoad(loadID, tenantID, kernel.NewUUID(), "LD2026090009")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	checkCallRepo := new(MockCheckCallRepository)
	uow := new(MockLoadUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("CheckCallRepository").Return(checkCallRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	loadRepo.On("Get", mock.Anything, tenantID, loadID).Return(aggregate, nil).Once()
	checkCallRepo.On("Add", mock.Anything, mock.AnythingOfType("*load.CheckCall")).
		Run(func(args mock.Arguments) {
			recorded := args.Get(1).(*load.CheckCall)
			assert.Equal(t, calledAt, recorded.CalledAt())
			assert.Equal(t, "Rolling on I-40", recorded.StatusNote())
		}).Return(nil).Once()
	loadRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	publisher := new(RecordingPublisher)
	h := commands.NewAddCheckCallCommandHandler(fakeLoadUoWFactory{uow: uow}, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	// the check call drove the same position-update path direct reports use
	require.NotNil(t, aggregate.CurrentLocation())
	assert.True(t, position.IsEqual(*aggregate.CurrentLocation()))
	assert.Equal(t, "Memphis", aggregate.CurrentCity())
	require.NotNil(t, aggregate.ETA())
	assert.Equal(t, eta, *aggregate.ETA())
	assert.NotNil(t, aggregate.LastTrackingUpdate())

	require.Len(t, publisher.published, 1)
	received, ok := publisher.published[0].(events.CheckCallReceived)
	require.True(t, ok)
	assert.Equal(t, loadID.String(), received.LoadID)
	assert.Equal(t, 35.15, received.Location.Lat)
	assert.Equal(t, "TN", received.Location.State)

	checkCallRepo.AssertExpectations(t)
	loadRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCheckCallCommandHandler_Handle_NilETAKeepsStored(t *testing.T) {
	ctx := t.Context()
	loadID, tenantID := kernel.NewUUID(), kernel.NewUUID()
	position, err := kernel.NewGeoPoint(36.16, -86.78)
	require.NoError(t, err)

	cmd, err := commands.NewAddCheckCallCommand(
		kernel.NewUUID(), loadID, tenantID,
		position, "Nashville", "TN", "", "", nil, time.Time{},
	)
	require.NoError(t, err)

	aggregate, err := load.NewLoad(loadID, tenantID, kernel.NewUUID(), "LD2026090010")
	require.NoError(t, err)
	storedETA := time.Now().UTC().Add(3 * time.Hour)
	prior, err := kernel.NewGeoPoint(35.15, -90.05)
	require.NoError(t, err)
	require.NoError(t, aggregate.ApplyPositionUpdate(prior, "Memphis", "TN", &storedETA, time.Now().UTC()))

	loadRepo := new(MockLoadRepository)
	checkCallRepo := new(MockCheckCallRepository)
	uow := new(MockLoadUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("CheckCallRepository").Return(checkCallRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	loadRepo.On("Get", mock.Anything, tenantID, loadID).Return(aggregate, nil).Once()
	checkCallRepo.On("Add", mock.Anything, mock.AnythingOfType("*load.CheckCall")).Return(nil).Once()
	loadRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAddCheckCallCommandHandler(fakeLoadUoWFactory{uow: uow}, new(RecordingPublisher))
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, aggregate.ETA())
	assert.Equal(t, storedETA, *aggregate.ETA())
	assert.Equal(t, "Nashville", aggregate.CurrentCity())
}
