package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand represents a request to delete a load. Only loads that
// never left PENDING, or that were cancelled, can be deleted.
type DeleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLoadCommand creates a command to delete a load.
func NewDeleteLoadCommand(loadID, tenantID kernel.UUID) (DeleteLoadCommand, error) {
	cmd := DeleteLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return DeleteLoadCommand{}, err
	}

	cmd.loadID = loadID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

// LoadID returns the load to delete.
func (c DeleteLoadCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c DeleteLoadCommand) TenantID() kernel.UUID { return c.tenantID }
