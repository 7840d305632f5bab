package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrDeleteStopCommandIsNotConstructed = errors.New(
	"DeleteStopCommand must be created via NewDeleteStopCommand constructor",
)

// DeleteStopCommand represents a request to remove a stop from its order.
// A stop that was already arrived at cannot be removed.
type DeleteStopCommand struct { //nolint:recvcheck //using for validation
	stopID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStopCommand creates a command to delete a stop.
func NewDeleteStopCommand(stopID, tenantID kernel.UUID) (DeleteStopCommand, error) {
	cmd := DeleteStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stopID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return DeleteStopCommand{}, err
	}

	cmd.stopID = stopID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStopCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStopCommandIsNotConstructed)
}

// StopID returns the stop to delete.
func (c DeleteStopCommand) StopID() kernel.UUID { return c.stopID }

// TenantID returns the owning tenant's identifier.
func (c DeleteStopCommand) TenantID() kernel.UUID { return c.tenantID }
