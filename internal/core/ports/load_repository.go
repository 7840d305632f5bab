package ports

import (
	"context"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by identifier within a tenant.
	// Returns errs.ObjectNotFoundError when the load does not exist
	// or belongs to a different tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*load.Load, error)

	// GetByOrder retrieves all loads created from the given order.
	GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]*load.Load, error)

	// Delete removes a load. Callers are responsible for checking that
	// the load's lifecycle permits deletion.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error
}

// CheckCallRepository defines the persistence contract for check calls.
// Check calls are append-only; there is no update or delete.
type CheckCallRepository interface {
	// Add persists a new check call.
	Add(ctx context.Context, checkCall *load.CheckCall) error

	// GetByLoad retrieves all check calls for a load, most recent first.
	GetByLoad(ctx context.Context, tenantID, loadID kernel.UUID) ([]*load.CheckCall, error)
}
