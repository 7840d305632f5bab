// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the merged status ledger of an order and all
// of its loads, newest entries first.
type GetOrderHistoryQuery struct {
	orderID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's merged history.
func NewGetOrderHistoryQuery(orderID, tenantID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), tenantID.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID:  orderID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID { return q.orderID }

// TenantID returns the owning tenant's identifier.
func (q GetOrderHistoryQuery) TenantID() kernel.UUID { return q.tenantID }

// GetOrderHistoryQueryResponse is one ledger entry of the merged trail.
type GetOrderHistoryQueryResponse struct {
	EntityType string
	EntityID   kernel.UUID
	OldStatus  string
	NewStatus  string
	Notes      string
	OccurredAt time.Time
}
