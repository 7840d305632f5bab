package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/stop"
	"tms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNotEnoughStops     = errors.New("order requires at least two stops")
	ErrPickupIsRequired   = errors.New("order requires at least one pickup stop")
	ErrDeliveryIsRequired = errors.New("order requires at least one delivery stop")
)

// StopInput carries the details of one initial stop of a new order. Stops
// are sequenced in the order they appear in the command.
type StopInput struct {
	StopID   kernel.UUID
	StopType stop.Type
	Address  string
	City     string
	State    string
}

// CreateOrderCommand represents a request to create a new transportation
// order together with its initial stops. An order needs at least two stops,
// at least one pickup and at least one delivery.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	tenantID   kernel.UUID
	customerID kernel.UUID

	rate          float64
	fuelSurcharge float64
	accessorials  float64
	customFields  map[string]any

	stops []StopInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, stop composition, and each stop's own input.
func NewCreateOrderCommand(
	orderID, tenantID, customerID kernel.UUID,
	rate, fuelSurcharge, accessorials float64,
	customFields map[string]any,
	stops []StopInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setCustomerID(customerID),
		cmd.setStops(stops),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.rate = rate
	cmd.fuelSurcharge = fuelSurcharge
	cmd.accessorials = accessorials
	cmd.customFields = customFields
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant's identifier.
func (c CreateOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// CustomerID returns the customer the order is for.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Rate returns the linehaul rate.
func (c CreateOrderCommand) Rate() float64 { return c.rate }

// FuelSurcharge returns the fuel surcharge component.
func (c CreateOrderCommand) FuelSurcharge() float64 { return c.fuelSurcharge }

// Accessorials returns the accessorial charges component.
func (c CreateOrderCommand) Accessorials() float64 { return c.accessorials }

// CustomFields returns the tenant-defined free-form fields.
func (c CreateOrderCommand) CustomFields() map[string]any { return c.customFields }

// Stops returns the initial stops in sequence order.
func (c CreateOrderCommand) Stops() []StopInput { return c.stops }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tenantID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setStops(stops []StopInput) error {
	if len(stops) < 2 {
		return ErrNotEnoughStops
	}

	var pickups, deliveries int
	for _, s := range stops {
		if err := s.StopID.Validate(); err != nil {
			return err
		}
		if err := s.StopType.Validate(); err != nil {
			return err
		}
		switch s.StopType {
		case stop.TypePickup:
			pickups++
		case stop.TypeDelivery:
			deliveries++
		}
	}

	if pickups == 0 {
		return ErrPickupIsRequired
	}
	if deliveries == 0 {
		return ErrDeliveryIsRequired
	}

	c.stops = stops
	return nil
}
