package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete an order. Deletion is
// only allowed for orders with no loads that are still PENDING or CANCELLED.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID, tenantID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant's identifier.
func (c DeleteOrderCommand) TenantID() kernel.UUID { return c.tenantID }
