package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// UpdateLoadCommand represents a partial update of a load. Nil fields are
// left untouched. A status change is validated against the transition table
// using the status currently persisted.
type UpdateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	tenantID kernel.UUID

	status        *load.Status
	driverName    *string
	driverPhone   *string
	equipmentType *string

	guard guard.ConstructorGuard
}

// NewUpdateLoadCommand creates a command to patch an existing load.
func NewUpdateLoadCommand(
	loadID, tenantID kernel.UUID,
	status *load.Status,
	driverName, driverPhone, equipmentType *string,
) (UpdateLoadCommand, error) {
	cmd := UpdateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return UpdateLoadCommand{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateLoadCommand{}, err
		}
	}

	cmd.loadID = loadID
	cmd.tenantID = tenantID
	cmd.status = status
	cmd.driverName = driverName
	cmd.driverPhone = driverPhone
	cmd.equipmentType = equipmentType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

// LoadID returns the load to update.
func (c UpdateLoadCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c UpdateLoadCommand) TenantID() kernel.UUID { return c.tenantID }

// Status returns the requested status, or nil when unchanged.
func (c UpdateLoadCommand) Status() *load.Status { return c.status }

// DriverName returns the new driver name, or nil when unchanged.
func (c UpdateLoadCommand) DriverName() *string { return c.driverName }

// DriverPhone returns the new driver phone, or nil when unchanged.
func (c UpdateLoadCommand) DriverPhone() *string { return c.driverPhone }

// EquipmentType returns the new equipment type, or nil when unchanged.
func (c UpdateLoadCommand) EquipmentType() *string { return c.equipmentType }
