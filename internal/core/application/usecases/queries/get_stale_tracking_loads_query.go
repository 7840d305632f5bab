package queries

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrGetStaleTrackingLoadsQueryIsNotConstructed = errors.New(
	"GetStaleTrackingLoadsQuery must be created via NewGetStaleTrackingLoadsQuery constructor",
)

// GetStaleTrackingLoadsQuery retrieves active loads across all tenants whose
// last tracking update is older than the cutoff.
type GetStaleTrackingLoadsQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleTrackingLoadsQuery creates a query for loads with stale tracking.
func NewGetStaleTrackingLoadsQuery(cutoff time.Time) (GetStaleTrackingLoadsQuery, error) {
	if cutoff.IsZero() {
		return GetStaleTrackingLoadsQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStaleTrackingLoadsQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleTrackingLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleTrackingLoadsQueryIsNotConstructed)
}

// Cutoff returns the staleness threshold.
func (q GetStaleTrackingLoadsQuery) Cutoff() time.Time { return q.cutoff }

// GetStaleTrackingLoadsQueryResponse is one load that has gone quiet.
type GetStaleTrackingLoadsQueryResponse struct {
	LoadID             kernel.UUID
	TenantID           kernel.UUID
	LoadNumber         string
	Status             string
	LastTrackingUpdate time.Time
}
