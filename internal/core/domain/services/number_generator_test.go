package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/core/domain/model/kernel"
)

type fakeSequenceRepository struct {
	counters map[string]int64
	err      error
}

func (f *fakeSequenceRepository) Next(_ context.Context, tenantID kernel.UUID, prefix, period string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counters == nil {
		f.counters = make(map[string]int64)
	}
	key := tenantID.String() + "/" + prefix + "/" + period
	f.counters[key]++
	return f.counters[key], nil
}

func Test_NumberGenerator_NextOrderNumber(t *testing.T) {
	gen, err := NewNumberGenerator(&fakeSequenceRepository{})
	require.NoError(t, err)
	gen.now = func() time.Time { return time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC) }

	tenantID := kernel.NewUUID()

	first, err := gen.NextOrderNumber(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "ORD2026090001", first)

	second, err := gen.NextOrderNumber(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "ORD2026090002", second)
}

func Test_NumberGenerator_FormatHasNoSeparators(t *testing.T) {
	gen, err := NewNumberGenerator(&fakeSequenceRepository{})
	require.NoError(t, err)

	number, err := gen.NextOrderNumber(context.Background(), kernel.NewUUID())
	require.NoError(t, err)
	assert.Regexp(t, `^ORD\d{6}\d{4}$`, number)
}

func Test_NumberGenerator_PrefixesAreIndependent(t *testing.T) {
	gen, err := NewNumberGenerator(&fakeSequenceRepository{})
	require.NoError(t, err)
	gen.now = func() time.Time { return time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC) }

	tenantID := kernel.NewUUID()

	_, err = gen.NextOrderNumber(context.Background(), tenantID)
	require.NoError(t, err)

	loadNumber, err := gen.NextLoadNumber(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "LD2026090001", loadNumber)
}

func Test_NumberGenerator_TenantsAreIndependent(t *testing.T) {
	gen, err := NewNumberGenerator(&fakeSequenceRepository{})
	require.NoError(t, err)
	gen.now = func() time.Time { return time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC) }

	first, err := gen.NextOrderNumber(context.Background(), kernel.NewUUID())
	require.NoError(t, err)
	second, err := gen.NextOrderNumber(context.Background(), kernel.NewUUID())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_NumberGenerator_CounterRestartsEachPeriod(t *testing.T) {
	gen, err := NewNumberGenerator(&fakeSequenceRepository{})
	require.NoError(t, err)

	tenantID := kernel.NewUUID()

	gen.now = func() time.Time { return time.Date(2026, time.September, 30, 23, 0, 0, 0, time.UTC) }
	september, err := gen.NextOrderNumber(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "ORD2026090001", september)

	gen.now = func() time.Time { return time.Date(2026, time.October, 1, 1, 0, 0, 0, time.UTC) }
	october, err := gen.NextOrderNumber(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "ORD2026100001", october)
}

func Test_NumberGenerator_SequenceFailure(t *testing.T) {
	gen, err := NewNumberGenerator(&fakeSequenceRepository{err: errors.New("connection refused")})
	require.NoError(t, err)

	_, err = gen.NextOrderNumber(context.Background(), kernel.NewUUID())
	assert.ErrorContains(t, err, "connection refused")
}

func Test_NewNumberGenerator_NilRepository(t *testing.T) {
	_, err := NewNumberGenerator(nil)
	assert.Error(t, err)
}
