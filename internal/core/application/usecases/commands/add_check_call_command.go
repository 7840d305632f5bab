package commands

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrAddCheckCallCommandIsNotConstructed = errors.New(
	"AddCheckCallCommand must be created via NewAddCheckCallCommand constructor",
)

// AddCheckCallCommand represents a dispatcher check call against a load: an
// immutable position/status report that also refreshes the load's live
// tracking fields.
type AddCheckCallCommand struct { //nolint:recvcheck //using for validation
	checkCallID kernel.UUID
	loadID      kernel.UUID
	tenantID    kernel.UUID

	position   kernel.GeoPoint
	city       string
	state      string
	statusNote string
	notes      string
	eta        *time.Time
	calledAt   time.Time

	guard guard.ConstructorGuard
}

// NewAddCheckCallCommand creates a command to record a check call. A zero
// calledAt defaults to the recording time.
func NewAddCheckCallCommand(
	checkCallID, loadID, tenantID kernel.UUID,
	position kernel.GeoPoint,
	city, state, statusNote, notes string,
	eta *time.Time,
	calledAt time.Time,
) (AddCheckCallCommand, error) {
	cmd := AddCheckCallCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkCallID.Validate(),
		loadID.Validate(),
		tenantID.Validate(),
		position.Validate(),
	); err != nil {
		return AddCheckCallCommand{}, err
	}

	cmd.checkCallID = checkCallID
	cmd.loadID = loadID
	cmd.tenantID = tenantID
	cmd.position = position
	cmd.city = city
	cmd.state = state
	cmd.statusNote = statusNote
	cmd.notes = notes
	cmd.eta = eta
	cmd.calledAt = calledAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCheckCallCommand) Validate() error {
	return c.guard.Validate(ErrAddCheckCallCommandIsNotConstructed)
}

// CheckCallID returns the identifier for the new check call.
func (c AddCheckCallCommand) CheckCallID() kernel.UUID { return c.checkCallID }

// LoadID returns the load being reported on.
func (c AddCheckCallCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c AddCheckCallCommand) TenantID() kernel.UUID { return c.tenantID }

// Position returns the reported coordinates.
func (c AddCheckCallCommand) Position() kernel.GeoPoint { return c.position }

// City returns the reported city.
func (c AddCheckCallCommand) City() string { return c.city }

// State returns the reported state/province.
func (c AddCheckCallCommand) State() string { return c.state }

// StatusNote returns the dispatcher's status annotation.
func (c AddCheckCallCommand) StatusNote() string { return c.statusNote }

// Notes returns free-form notes.
func (c AddCheckCallCommand) Notes() string { return c.notes }

// ETA returns the reported ETA, or nil to keep the stored one.
func (c AddCheckCallCommand) ETA() *time.Time { return c.eta }

// CalledAt returns when the call actually happened.
func (c AddCheckCallCommand) CalledAt() time.Time { return c.calledAt }
