package ports

import (
	"context"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/stop"
)

// StopRepository defines the persistence contract for stops.
type StopRepository interface {
	// Add persists a new stop to storage.
	Add(ctx context.Context, aggregate *stop.Stop) error

	// Update persists changes to an existing stop.
	Update(ctx context.Context, aggregate *stop.Stop) error

	// Get retrieves a stop by identifier within a tenant.
	// Returns errs.ObjectNotFoundError when the stop does not exist
	// or belongs to a different tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*stop.Stop, error)

	// GetByOrder retrieves all stops of an order ordered by sequence.
	GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]*stop.Stop, error)

	// Delete removes a stop. Callers are responsible for checking that
	// the stop's lifecycle permits deletion and for closing the
	// sequence gap afterwards.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error
}
