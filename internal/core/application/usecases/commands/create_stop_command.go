package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/stop"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrCreateStopCommandIsNotConstructed = errors.New(
	"CreateStopCommand must be created via NewCreateStopCommand constructor",
)

// CreateStopCommand represents a request to add a stop to an existing order.
// A nil sequence appends the stop at the end; an explicit sequence inserts
// at that position and shifts later stops.
type CreateStopCommand struct { //nolint:recvcheck //using for validation
	stopID   kernel.UUID
	tenantID kernel.UUID
	orderID  kernel.UUID

	stopType stop.Type
	sequence *int
	address  string
	city     string
	state    string

	guard guard.ConstructorGuard
}

// NewCreateStopCommand creates a command to add a stop to an order.
func NewCreateStopCommand(
	stopID, tenantID, orderID kernel.UUID,
	stopType stop.Type,
	sequence *int,
	address, city, state string,
) (CreateStopCommand, error) {
	cmd := CreateStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stopID.Validate(),
		tenantID.Validate(),
		orderID.Validate(),
		stopType.Validate(),
	); err != nil {
		return CreateStopCommand{}, err
	}
	if sequence != nil && *sequence < 1 {
		return CreateStopCommand{}, errs.NewValueIsInvalidError("stopSequence")
	}

	cmd.stopID = stopID
	cmd.tenantID = tenantID
	cmd.orderID = orderID
	cmd.stopType = stopType
	cmd.sequence = sequence
	cmd.address = address
	cmd.city = city
	cmd.state = state
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStopCommand) Validate() error {
	return c.guard.Validate(ErrCreateStopCommandIsNotConstructed)
}

// StopID returns the identifier for the new stop.
func (c CreateStopCommand) StopID() kernel.UUID { return c.stopID }

// TenantID returns the owning tenant's identifier.
func (c CreateStopCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order the stop belongs to.
func (c CreateStopCommand) OrderID() kernel.UUID { return c.orderID }

// StopType returns PICKUP or DELIVERY.
func (c CreateStopCommand) StopType() stop.Type { return c.stopType }

// Sequence returns the requested position, or nil to append at the end.
func (c CreateStopCommand) Sequence() *int { return c.sequence }

// Address returns the street address of the waypoint.
func (c CreateStopCommand) Address() string { return c.address }

// City returns the waypoint city.
func (c CreateStopCommand) City() string { return c.city }

// State returns the waypoint state/province.
func (c CreateStopCommand) State() string { return c.state }
