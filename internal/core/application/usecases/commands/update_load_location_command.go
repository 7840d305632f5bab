package commands

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrUpdateLoadLocationCommandIsNotConstructed = errors.New(
	"UpdateLoadLocationCommand must be created via NewUpdateLoadLocationCommand constructor",
)

// UpdateLoadLocationCommand represents a direct tracking position report for
// a load, outside of a formal check call.
type UpdateLoadLocationCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	tenantID kernel.UUID

	position kernel.GeoPoint
	city     string
	state    string
	eta      *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateLoadLocationCommand creates a command to report a load position.
// A nil eta keeps the previously stored ETA.
func NewUpdateLoadLocationCommand(
	loadID, tenantID kernel.UUID,
	position kernel.GeoPoint,
	city, state string,
	eta *time.Time,
) (UpdateLoadLocationCommand, error) {
	cmd := UpdateLoadLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadID.Validate(),
		tenantID.Validate(),
		position.Validate(),
	); err != nil {
		return UpdateLoadLocationCommand{}, err
	}

	cmd.loadID = loadID
	cmd.tenantID = tenantID
	cmd.position = position
	cmd.city = city
	cmd.state = state
	cmd.eta = eta
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLoadLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadLocationCommandIsNotConstructed)
}

// LoadID returns the load being tracked.
func (c UpdateLoadLocationCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c UpdateLoadLocationCommand) TenantID() kernel.UUID { return c.tenantID }

// Position returns the reported coordinates.
func (c UpdateLoadLocationCommand) Position() kernel.GeoPoint { return c.position }

// City returns the reported city.
func (c UpdateLoadLocationCommand) City() string { return c.city }

// State returns the reported state/province.
func (c UpdateLoadLocationCommand) State() string { return c.state }

// ETA returns the reported ETA, or nil to keep the stored one.
func (c UpdateLoadLocationCommand) ETA() *time.Time { return c.eta }
