package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a request to create a load against an
// existing order.
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to register a new load.
func NewCreateLoadCommand(loadID, tenantID, orderID kernel.UUID) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadID.Validate(),
		tenantID.Validate(),
		orderID.Validate(),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	cmd.loadID = loadID
	cmd.tenantID = tenantID
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier for the new load.
func (c CreateLoadCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c CreateLoadCommand) TenantID() kernel.UUID { return c.tenantID }

// OrderID returns the order the load is created from.
func (c CreateLoadCommand) OrderID() kernel.UUID { return c.orderID }
