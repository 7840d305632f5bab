package ports

import (
	"context"

	"tms/internal/core/domain/events"
)

// EventPublisher delivers domain events to interested consumers after the
// originating transaction has committed. Delivery is best-effort:
// implementations log failures instead of returning them, so a broker
// outage never fails a committed business operation.
type EventPublisher interface {
	// Publish emits the given events in order.
	Publish(ctx context.Context, evts ...events.DomainEvent)
}
