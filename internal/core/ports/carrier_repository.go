package ports

import (
	"context"

	"tms/internal/core/domain/model/carrier"
	"tms/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carriers.
type CarrierRepository interface {
	// Add persists a new carrier to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by identifier within a tenant.
	// Returns errs.ObjectNotFoundError when the carrier does not exist
	// or belongs to a different tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*carrier.Carrier, error)
}
