package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrReorderStopsCommandIsNotConstructed = errors.New(
	"ReorderStopsCommand must be created via NewReorderStopsCommand constructor",
)

// ReorderStopsCommand represents a full reordering of an order's stops. The
// supplied list must contain each of the order's stop identifiers exactly
// once; list position becomes the stop's new 1-based sequence.
type ReorderStopsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	stopIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderStopsCommand creates a command to reorder an order's stops.
func NewReorderStopsCommand(orderID, tenantID kernel.UUID, stopIDs []kernel.UUID) (ReorderStopsCommand, error) {
	cmd := ReorderStopsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return ReorderStopsCommand{}, err
	}
	if len(stopIDs) == 0 {
		return ReorderStopsCommand{}, errs.NewValueIsRequiredError("stopIDs")
	}

	seen := make(map[string]struct{}, len(stopIDs))
	for _, id := range stopIDs {
		if err := id.Validate(); err != nil {
			return ReorderStopsCommand{}, err
		}
		if _, dup := seen[id.String()]; dup {
			return ReorderStopsCommand{}, errs.NewValueIsInvalidError("stopIDs")
		}
		seen[id.String()] = struct{}{}
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.stopIDs = stopIDs
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderStopsCommand) Validate() error {
	return c.guard.Validate(ErrReorderStopsCommandIsNotConstructed)
}

// OrderID returns the order whose stops are reordered.
func (c ReorderStopsCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant's identifier.
func (c ReorderStopsCommand) TenantID() kernel.UUID { return c.tenantID }

// StopIDs returns the stop identifiers in their new order.
func (c ReorderStopsCommand) StopIDs() []kernel.UUID { return c.stopIDs }
