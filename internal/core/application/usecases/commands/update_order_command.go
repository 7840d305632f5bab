package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order. Nil fields are
// left untouched. A status change is validated against the transition table
// using the status currently persisted, not the one the caller last saw.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID

	status        *order.Status
	rate          *float64
	fuelSurcharge *float64
	accessorials  *float64
	customFields  map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an existing order.
func NewUpdateOrderCommand(
	orderID, tenantID kernel.UUID,
	status *order.Status,
	rate, fuelSurcharge, accessorials *float64,
	customFields map[string]any,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return UpdateOrderCommand{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.status = status
	cmd.rate = rate
	cmd.fuelSurcharge = fuelSurcharge
	cmd.accessorials = accessorials
	cmd.customFields = customFields
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant's identifier.
func (c UpdateOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// Status returns the requested status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status { return c.status }

// Rate returns the new linehaul rate, or nil when unchanged.
func (c UpdateOrderCommand) Rate() *float64 { return c.rate }

// FuelSurcharge returns the new fuel surcharge, or nil when unchanged.
func (c UpdateOrderCommand) FuelSurcharge() *float64 { return c.fuelSurcharge }

// Accessorials returns the new accessorial charges, or nil when unchanged.
func (c UpdateOrderCommand) Accessorials() *float64 { return c.accessorials }

// CustomFields returns the replacement custom fields, or nil when unchanged.
func (c UpdateOrderCommand) CustomFields() map[string]any { return c.customFields }

// HasChargeChange reports whether any charge component is being updated.
func (c UpdateOrderCommand) HasChargeChange() bool {
	return c.rate != nil || c.fuelSurcharge != nil || c.accessorials != nil
}
