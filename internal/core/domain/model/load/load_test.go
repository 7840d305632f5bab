package load_test

import (
	"errors"
	"testing"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoad(t *testing.T) *load.Load {
	t.Helper()
	l, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "LD2026090001")
	require.NoError(t, err)
	return l
}

func restoreLoadAt(t *testing.T, status load.Status) *load.Load {
	t.Helper()
	l, err := load.RestoreLoad(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"LD2026090001", status,
		nil, "", "", "", nil, "", "", nil, nil, nil,
	)
	require.NoError(t, err)
	return l
}

func TestNewLoad(t *testing.T) {
	l := newTestLoad(t)

	assert.Equal(t, load.StatusPending, l.Status())
	assert.False(t, l.HasCarrier())
	assert.Nil(t, l.DeliveredAt())
	require.NoError(t, l.Validate())
}

func TestLoad_AssignCarrier(t *testing.T) {
	t.Run("pending to assigned", func(t *testing.T) {
		l := newTestLoad(t)
		carrierID := kernel.NewUUID()

		require.NoError(t, l.AssignCarrier(carrierID, "R. Alvarez", "555-0188", "53' dry van"))

		assert.Equal(t, load.StatusAssigned, l.Status())
		require.NotNil(t, l.CarrierID())
		assert.True(t, l.CarrierID().IsEqual(carrierID))
		assert.Equal(t, "53' dry van", l.EquipmentType())
	})

	t.Run("reassignment keeps assigned status", func(t *testing.T) {
		l := newTestLoad(t)
		require.NoError(t, l.AssignCarrier(kernel.NewUUID(), "A", "1", "van"))
		second := kernel.NewUUID()

		require.NoError(t, l.AssignCarrier(second, "B", "2", "reefer"))

		assert.Equal(t, load.StatusAssigned, l.Status())
		assert.True(t, l.CarrierID().IsEqual(second))
	})

	t.Run("rejected once in transit", func(t *testing.T) {
		l := restoreLoadAt(t, load.StatusInTransit)

		err := l.AssignCarrier(kernel.NewUUID(), "", "", "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStatusTransitionNotAllowed))
	})
}

func TestLoad_Dispatch(t *testing.T) {
	t.Run("assigned load dispatches", func(t *testing.T) {
		l := newTestLoad(t)
		require.NoError(t, l.AssignCarrier(kernel.NewUUID(), "", "", ""))

		require.NoError(t, l.Dispatch())
		assert.Equal(t, load.StatusDispatched, l.Status())
	})

	t.Run("pending load cannot dispatch", func(t *testing.T) {
		l := newTestLoad(t)

		err := l.Dispatch()

		require.Error(t, err)
		assert.Equal(t, load.StatusPending, l.Status())
	})
}

func TestLoad_ChangeStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending to in_transit is rejected", func(t *testing.T) {
		l := newTestLoad(t)

		err := l.ChangeStatus(load.StatusInTransit, now)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStatusTransitionNotAllowed))
		assert.Equal(t, load.StatusPending, l.Status())
	})

	t.Run("dispatched to delivered must pass through in_transit", func(t *testing.T) {
		l := restoreLoadAt(t, load.StatusDispatched)

		require.Error(t, l.ChangeStatus(load.StatusDelivered, now))
		assert.Equal(t, load.StatusDispatched, l.Status())

		require.NoError(t, l.ChangeStatus(load.StatusInTransit, now))
		require.NoError(t, l.ChangeStatus(load.StatusDelivered, now))
		assert.Equal(t, load.StatusDelivered, l.Status())
		require.NotNil(t, l.DeliveredAt())
		assert.Equal(t, now, *l.DeliveredAt())
	})

	t.Run("deliveredAt is stamped exactly once", func(t *testing.T) {
		l := restoreLoadAt(t, load.StatusInTransit)
		require.NoError(t, l.ChangeStatus(load.StatusDelivered, now))
		first := *l.DeliveredAt()

		require.NoError(t, l.ChangeStatus(load.StatusCompleted, now.Add(time.Hour)))

		assert.Equal(t, first, *l.DeliveredAt())
	})
}

func TestLoad_ApplyPositionUpdate(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	pos, _ := kernel.NewGeoPoint(39.7392, -104.9903)

	t.Run("overwrites position and stamps tracking time", func(t *testing.T) {
		l := newTestLoad(t)

		require.NoError(t, l.ApplyPositionUpdate(pos, "Denver", "CO", nil, now))

		require.NotNil(t, l.CurrentLocation())
		assert.True(t, l.CurrentLocation().IsEqual(pos))
		assert.Equal(t, "Denver", l.CurrentCity())
		assert.Equal(t, "CO", l.CurrentState())
		require.NotNil(t, l.LastTrackingUpdate())
		assert.Equal(t, now, *l.LastTrackingUpdate())
		assert.Nil(t, l.ETA())
	})

	t.Run("nil eta keeps previous value", func(t *testing.T) {
		l := newTestLoad(t)
		eta := now.Add(6 * time.Hour)
		require.NoError(t, l.ApplyPositionUpdate(pos, "Denver", "CO", &eta, now))

		require.NoError(t, l.ApplyPositionUpdate(pos, "Limon", "CO", nil, now.Add(time.Hour)))

		require.NotNil(t, l.ETA())
		assert.Equal(t, eta, *l.ETA())
	})

	t.Run("invalid position is rejected", func(t *testing.T) {
		l := newTestLoad(t)
		var zero kernel.GeoPoint

		require.Error(t, l.ApplyPositionUpdate(zero, "", "", nil, now))
		assert.Nil(t, l.LastTrackingUpdate())
	})
}

func TestStatus_IsDeletable(t *testing.T) {
	assert.True(t, load.StatusPending.IsDeletable())
	assert.True(t, load.StatusCancelled.IsDeletable())
	assert.False(t, load.StatusAssigned.IsDeletable())
	assert.False(t, load.StatusDelivered.IsDeletable())
}

func TestNewCheckCall(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	pos, _ := kernel.NewGeoPoint(35.4676, -97.5164)

	t.Run("caller supplied calledAt is kept", func(t *testing.T) {
		calledAt := now.Add(-20 * time.Minute)

		cc, err := load.NewCheckCall(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pos, "Oklahoma City", "OK", "rolling", "", nil, calledAt, now,
		)

		require.NoError(t, err)
		assert.Equal(t, calledAt, cc.CalledAt())
		assert.Equal(t, now, cc.RecordedAt())
	})

	t.Run("zero calledAt defaults to recordedAt", func(t *testing.T) {
		cc, err := load.NewCheckCall(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pos, "", "", "", "", nil, time.Time{}, now,
		)

		require.NoError(t, err)
		assert.Equal(t, now, cc.CalledAt())
	})

	t.Run("requires valid load reference", func(t *testing.T) {
		var zero kernel.UUID
		_, err := load.NewCheckCall(
			kernel.NewUUID(), kernel.NewUUID(), zero,
			pos, "", "", "", "", nil, now, now,
		)

		require.Error(t, err)
	})
}
