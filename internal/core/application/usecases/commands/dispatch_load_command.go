package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrDispatchLoadCommandIsNotConstructed = errors.New(
	"DispatchLoadCommand must be created via NewDispatchLoadCommand constructor",
)

// DispatchLoadCommand represents a request to dispatch a tendered load.
type DispatchLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchLoadCommand creates a command to dispatch a load.
func NewDispatchLoadCommand(loadID, tenantID kernel.UUID) (DispatchLoadCommand, error) {
	cmd := DispatchLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return DispatchLoadCommand{}, err
	}

	cmd.loadID = loadID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchLoadCommand) Validate() error {
	return c.guard.Validate(ErrDispatchLoadCommandIsNotConstructed)
}

// LoadID returns the load to dispatch.
func (c DispatchLoadCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c DispatchLoadCommand) TenantID() kernel.UUID { return c.tenantID }
