package ports

import (
	"context"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every method is tenant-scoped: a lookup never crosses tenant boundaries.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier within a tenant.
	// Returns errs.ObjectNotFoundError when the order does not exist
	// or belongs to a different tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. Callers are responsible for checking that
	// the order's lifecycle permits deletion.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error
}
