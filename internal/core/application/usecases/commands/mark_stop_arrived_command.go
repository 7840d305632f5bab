package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrMarkStopArrivedCommandIsNotConstructed = errors.New(
	"MarkStopArrivedCommand must be created via NewMarkStopArrivedCommand constructor",
)

// MarkStopArrivedCommand represents a driver arrival at a stop.
type MarkStopArrivedCommand struct { //nolint:recvcheck //using for validation
	stopID   kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkStopArrivedCommand creates a command to record arrival at a stop.
func NewMarkStopArrivedCommand(stopID, tenantID kernel.UUID) (MarkStopArrivedCommand, error) {
	cmd := MarkStopArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stopID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return MarkStopArrivedCommand{}, err
	}

	cmd.stopID = stopID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkStopArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkStopArrivedCommandIsNotConstructed)
}

// StopID returns the stop being arrived at.
func (c MarkStopArrivedCommand) StopID() kernel.UUID { return c.stopID }

// TenantID returns the owning tenant's identifier.
func (c MarkStopArrivedCommand) TenantID() kernel.UUID { return c.tenantID }
