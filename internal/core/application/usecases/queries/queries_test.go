package queries_test

import (
	"testing"
	"time"

	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderHistoryQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	tenantID := kernel.NewUUID()

	query, err := queries.NewGetOrderHistoryQuery(orderID, tenantID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, tenantID, query.TenantID())
}

func TestNewGetOrderHistoryQuery_EmptyIDs(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrderHistoryQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestNewGetLoadCheckCallsQuery_Valid(t *testing.T) {
	loadID := kernel.NewUUID()
	tenantID := kernel.NewUUID()

	query, err := queries.NewGetLoadCheckCallsQuery(loadID, tenantID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, loadID, query.LoadID())
	assert.Equal(t, tenantID, query.TenantID())
}

func TestGetLoadCheckCallsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLoadCheckCallsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLoadCheckCallsQueryIsNotConstructed)
}

func TestNewGetStaleTrackingLoadsQuery_Valid(t *testing.T) {
	cutoff := time.Now().UTC().Add(-4 * time.Hour)

	query, err := queries.NewGetStaleTrackingLoadsQuery(cutoff)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, cutoff, query.Cutoff())
}

func TestNewGetStaleTrackingLoadsQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetStaleTrackingLoadsQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetStaleTrackingLoadsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStaleTrackingLoadsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStaleTrackingLoadsQueryIsNotConstructed)
}
