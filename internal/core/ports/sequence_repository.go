package ports

import (
	"context"

	"tms/internal/core/domain/model/kernel"
)

// SequenceRepository hands out monotonically increasing counters used to
// build business numbers. Counters are keyed by tenant, prefix, and period
// so that numbering restarts each month and never collides under
// concurrent order creation.
type SequenceRepository interface {
	// Next atomically increments and returns the counter for the given
	// tenant, prefix, and period. The first call for a key returns 1.
	Next(ctx context.Context, tenantID kernel.UUID, prefix, period string) (int64, error)
}
