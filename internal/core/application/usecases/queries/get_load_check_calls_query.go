package queries

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrGetLoadCheckCallsQueryIsNotConstructed = errors.New(
	"GetLoadCheckCallsQuery must be created via NewGetLoadCheckCallsQuery constructor",
)

// GetLoadCheckCallsQuery retrieves the tracking trail of a load, newest
// check calls first.
type GetLoadCheckCallsQuery struct {
	loadID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadCheckCallsQuery creates a query for a load's check-call trail.
func NewGetLoadCheckCallsQuery(loadID, tenantID kernel.UUID) (GetLoadCheckCallsQuery, error) {
	if err := errors.Join(loadID.Validate(), tenantID.Validate()); err != nil {
		return GetLoadCheckCallsQuery{}, err
	}

	return GetLoadCheckCallsQuery{
		loadID:   loadID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadCheckCallsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadCheckCallsQueryIsNotConstructed)
}

// LoadID returns the load whose trail is requested.
func (q GetLoadCheckCallsQuery) LoadID() kernel.UUID { return q.loadID }

// TenantID returns the owning tenant's identifier.
func (q GetLoadCheckCallsQuery) TenantID() kernel.UUID { return q.tenantID }

// GetLoadCheckCallsQueryResponse is one check call of a load's trail.
type GetLoadCheckCallsQueryResponse struct {
	ID         kernel.UUID
	Lat        float64
	Lng        float64
	City       string
	State      string
	StatusNote string
	Notes      string
	ETA        *time.Time
	CalledAt   time.Time
	RecordedAt time.Time
}
