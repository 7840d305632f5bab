package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
)

func Test_NewRecord(t *testing.T) {
	now := time.Now().UTC()
	entityID := kernel.NewUUID()

	r, err := NewRecord(kernel.NewUUID(), kernel.NewUUID(),
		"ORDER", entityID, "PENDING", "QUOTED", "rate confirmed", now)
	require.NoError(t, err)

	assert.NoError(t, r.Validate())
	assert.Equal(t, "ORDER", r.EntityType())
	assert.Equal(t, entityID, r.EntityID())
	assert.Equal(t, "PENDING", r.OldStatus())
	assert.Equal(t, "QUOTED", r.NewStatus())
	assert.Equal(t, "rate confirmed", r.Notes())
	assert.Equal(t, now, r.OccurredAt())
}

func Test_NewRecord_CreationEntryHasEmptyOldStatus(t *testing.T) {
	r, err := NewRecord(kernel.NewUUID(), kernel.NewUUID(),
		"LOAD", kernel.NewUUID(), "", "PENDING", "", time.Now())
	require.NoError(t, err)

	assert.Empty(t, r.OldStatus())
	assert.Equal(t, "PENDING", r.NewStatus())
}

func Test_NewRecord_RejectsBadInput(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()

	_, err := NewRecord(kernel.UUID{}, id, "ORDER", id, "", "PENDING", "", now)
	assert.Error(t, err)

	_, err = NewRecord(id, id, "", id, "", "PENDING", "", now)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewRecord(id, id, "ORDER", id, "PENDING", "", "", now)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_Record_Validate_NotConstructed(t *testing.T) {
	var r Record
	assert.ErrorIs(t, r.Validate(), ErrRecordIsNotConstructed)
}
