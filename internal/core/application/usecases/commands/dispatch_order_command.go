package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents a request to dispatch an order. Dispatch
// requires a PENDING or QUOTED order with at least one carrier-assigned load.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order.
func NewDispatchOrderCommand(orderID, tenantID kernel.UUID) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant's identifier.
func (c DispatchOrderCommand) TenantID() kernel.UUID { return c.tenantID }
