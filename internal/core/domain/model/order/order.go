package order

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// EntityType is the entity discriminator used in status history records and
// transition errors.
const EntityType = "ORDER"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrOrderNumberIsRequired is returned when the business number is empty.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrOrderIsNotCancellable is returned when cancelling an order that has
	// been delivered, invoiced, paid, or already cancelled.
	ErrOrderIsNotCancellable = errs.NewConflictError("order can no longer be cancelled")
)

// Order is the customer-facing shipment request and the aggregate root of the
// order lifecycle. It owns the order-level status machine and the charge
// totals; its stops and loads live in their own repositories keyed by the
// order's identity.
//
// Invariants:
//   - identity, tenant, customer, and business number are set at construction
//     and never change
//   - status only moves along the declared transition table, except for the
//     cancellation path and the stop-cascade path which are modeled explicitly
//   - totalCharges always equals rate + fuelSurcharge + accessorials
type Order struct {
	id            kernel.UUID
	tenantID      kernel.UUID
	orderNumber   string
	customerID    kernel.UUID
	status        Status
	rate          float64
	fuelSurcharge float64
	accessorials  float64
	totalCharges  float64
	customFields  map[string]any

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in PENDING status.
// The business number comes from the sequence generator and must be non-empty;
// identity, tenant, and customer references must be valid UUIDs.
func NewOrder(
	id, tenantID, customerID kernel.UUID,
	orderNumber string,
	rate, fuelSurcharge, accessorials float64,
	customFields map[string]any,
) (*Order, error) {
	o := &Order{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setCustomerID(customerID),
		o.setOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	o.setCharges(rate, fuelSurcharge, accessorials)
	o.customFields = customFields
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying
// creation-time defaults. The stored status must be a declared state.
func RestoreOrder(
	id, tenantID, customerID kernel.UUID,
	orderNumber string,
	status Status,
	rate, fuelSurcharge, accessorials float64,
	customFields map[string]any,
) (*Order, error) {
	o, err := NewOrder(id, tenantID, customerID, orderNumber, rate, fuelSurcharge, accessorials, customFields)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// OrderNumber returns the human-readable business number (ORDyyyymmNNNN).
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rate returns the base freight rate.
func (o *Order) Rate() float64 {
	return o.rate
}

// FuelSurcharge returns the fuel surcharge component.
func (o *Order) FuelSurcharge() float64 {
	return o.fuelSurcharge
}

// Accessorials returns the accessorial charges component.
func (o *Order) Accessorials() float64 {
	return o.accessorials
}

// TotalCharges returns the sum of the three charge components.
func (o *Order) TotalCharges() float64 {
	return o.totalCharges
}

// CustomFields returns the free-form custom fields map.
func (o *Order) CustomFields() map[string]any {
	return o.customFields
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ChangeStatus transitions the order along a declared edge of the transition
// table. The caller is expected to have read the currently persisted status
// immediately before calling; an undeclared edge yields a
// StatusTransitionError and leaves the order unchanged.
func (o *Order) ChangeStatus(to Status) error {
	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Cancel moves the order to CANCELLED. Cancellation is rejected once the
// order is delivered or has entered the financial trail (INVOICED, PAID), and
// when it is already cancelled.
func (o *Order) Cancel() error {
	if !o.status.CanCancel() {
		return ErrOrderIsNotCancellable
	}

	o.status = StatusCancelled
	return nil
}

// CascadeStatus applies a status derived from the order's stops: AT_PICKUP or
// AT_DELIVERY on arrival, IN_TRANSIT while undeparted stops remain, DELIVERED
// when the last stop departs. The cascade reflects physical reality reported
// by the stops, so it intentionally bypasses the order transition table.
func (o *Order) CascadeStatus(to Status) error {
	switch to {
	case StatusAtPickup, StatusAtDelivery, StatusInTransit, StatusDelivered:
		o.status = to
		return nil
	default:
		return errs.NewStatusTransitionErrorWithCause(EntityType, string(o.status), string(to),
			errors.New("status cannot be derived from stops"))
	}
}

// SetCharges replaces the charge components and recomputes totalCharges.
func (o *Order) SetCharges(rate, fuelSurcharge, accessorials float64) {
	o.setCharges(rate, fuelSurcharge, accessorials)
}

// SetCustomFields replaces the free-form custom fields map.
func (o *Order) SetCustomFields(fields map[string]any) {
	o.customFields = fields
}

func (o *Order) setCharges(rate, fuelSurcharge, accessorials float64) {
	o.rate = rate
	o.fuelSurcharge = fuelSurcharge
	o.accessorials = accessorials
	o.totalCharges = rate + fuelSurcharge + accessorials
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.tenantID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setOrderNumber(n string) error {
	if n == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = n
	return nil
}
