package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrAssignCarrierCommandIsNotConstructed = errors.New(
	"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
)

// AssignCarrierCommand represents a request to tender a load to a carrier
// with its driver and equipment details.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	tenantID  kernel.UUID
	carrierID kernel.UUID

	driverName    string
	driverPhone   string
	equipmentType string

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to assign a carrier to a load.
func NewAssignCarrierCommand(
	loadID, tenantID, carrierID kernel.UUID,
	driverName, driverPhone, equipmentType string,
) (AssignCarrierCommand, error) {
	cmd := AssignCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loadID.Validate(),
		tenantID.Validate(),
		carrierID.Validate(),
	); err != nil {
		return AssignCarrierCommand{}, err
	}
	if driverName == "" {
		return AssignCarrierCommand{}, errs.NewValueIsRequiredError("driverName")
	}

	cmd.loadID = loadID
	cmd.tenantID = tenantID
	cmd.carrierID = carrierID
	cmd.driverName = driverName
	cmd.driverPhone = driverPhone
	cmd.equipmentType = equipmentType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// LoadID returns the load to tender.
func (c AssignCarrierCommand) LoadID() kernel.UUID { return c.loadID }

// TenantID returns the owning tenant's identifier.
func (c AssignCarrierCommand) TenantID() kernel.UUID { return c.tenantID }

// CarrierID returns the carrier taking the load.
func (c AssignCarrierCommand) CarrierID() kernel.UUID { return c.carrierID }

// DriverName returns the assigned driver's name.
func (c AssignCarrierCommand) DriverName() string { return c.driverName }

// DriverPhone returns the assigned driver's phone number.
func (c AssignCarrierCommand) DriverPhone() string { return c.driverPhone }

// EquipmentType returns the equipment the carrier will run.
func (c AssignCarrierCommand) EquipmentType() string { return c.equipmentType }
