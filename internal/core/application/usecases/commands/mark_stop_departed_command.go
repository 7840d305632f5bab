package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrMarkStopDepartedCommandIsNotConstructed = errors.New(
	"MarkStopDepartedCommand must be created via NewMarkStopDepartedCommand constructor",
)

// MarkStopDepartedCommand represents a driver departure from a stop,
// optionally with a proof-of-work signature and notes.
type MarkStopDepartedCommand struct { //nolint:recvcheck //using for validation
	stopID   kernel.UUID
	tenantID kernel.UUID
	signedBy string
	notes    string

	guard guard.ConstructorGuard
}

// NewMarkStopDepartedCommand creates a command to record departure from a stop.
func NewMarkStopDepartedCommand(stopID, tenantID kernel.UUID, signedBy, notes string) (MarkStopDepartedCommand, error) {
	cmd := MarkStopDepartedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stopID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return MarkStopDepartedCommand{}, err
	}

	cmd.stopID = stopID
	cmd.tenantID = tenantID
	cmd.signedBy = signedBy
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkStopDepartedCommand) Validate() error {
	return c.guard.Validate(ErrMarkStopDepartedCommandIsNotConstructed)
}

// StopID returns the stop being departed.
func (c MarkStopDepartedCommand) StopID() kernel.UUID { return c.stopID }

// TenantID returns the owning tenant's identifier.
func (c MarkStopDepartedCommand) TenantID() kernel.UUID { return c.tenantID }

// SignedBy returns who signed for the freight, possibly empty.
func (c MarkStopDepartedCommand) SignedBy() string { return c.signedBy }

// Notes returns free-form departure notes.
func (c MarkStopDepartedCommand) Notes() string { return c.notes }
