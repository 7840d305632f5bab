package load

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// EntityType is the entity discriminator used in status history records and
// transition errors.
const EntityType = "LOAD"

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created
	// through NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad")
	// ErrLoadNumberIsRequired is returned when the business number is empty.
	ErrLoadNumberIsRequired = errs.NewValueIsRequiredError("loadNumber")
	// ErrLoadIsNotDeletable is returned when deleting a load that has already
	// entered execution.
	ErrLoadIsNotDeletable = errs.NewConflictError("load can only be deleted while PENDING or CANCELLED")
)

// Load is the carrier-facing execution unit fulfilling part or all of an
// order. It owns the load-level status machine, the carrier assignment, and
// the live tracking fields mutated by check calls.
//
// Invariants:
//   - orderID is set at construction and never changes
//   - status only moves along the declared transition table
//   - deliveredAt is stamped exactly once, on the transition into DELIVERED
type Load struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	orderID    kernel.UUID
	loadNumber string
	status     Status

	carrierID     *kernel.UUID
	driverName    string
	driverPhone   string
	equipmentType string

	currentLocation    *kernel.GeoPoint
	currentCity        string
	currentState       string
	eta                *time.Time
	lastTrackingUpdate *time.Time
	deliveredAt        *time.Time

	guard guard.ConstructorGuard
}

// NewLoad creates a new Load in PENDING status against an existing order.
func NewLoad(id, tenantID, orderID kernel.UUID, loadNumber string) (*Load, error) {
	l := &Load{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setTenantID(tenantID),
		l.setOrderID(orderID),
		l.setLoadNumber(loadNumber),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a Load from persistence.
// The stored status must be a declared state.
func RestoreLoad(
	id, tenantID, orderID kernel.UUID,
	loadNumber string,
	status Status,
	carrierID *kernel.UUID,
	driverName, driverPhone, equipmentType string,
	currentLocation *kernel.GeoPoint,
	currentCity, currentState string,
	eta, lastTrackingUpdate, deliveredAt *time.Time,
) (*Load, error) {
	l, err := NewLoad(id, tenantID, orderID, loadNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	l.status = status
	l.carrierID = carrierID
	l.driverName = driverName
	l.driverPhone = driverPhone
	l.equipmentType = equipmentType
	l.currentLocation = currentLocation
	l.currentCity = currentCity
	l.currentState = currentState
	l.eta = eta
	l.lastTrackingUpdate = lastTrackingUpdate
	l.deliveredAt = deliveredAt
	return l, nil
}

// Validate ensures the Load instance was properly constructed.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// TenantID returns the owning tenant's identifier.
func (l *Load) TenantID() kernel.UUID {
	return l.tenantID
}

// OrderID returns the owning order's identifier. Immutable.
func (l *Load) OrderID() kernel.UUID {
	return l.orderID
}

// LoadNumber returns the human-readable business number (LDyyyymmNNNN).
func (l *Load) LoadNumber() string {
	return l.loadNumber
}

// Status returns the current lifecycle status.
func (l *Load) Status() Status {
	return l.status
}

// CarrierID returns the assigned carrier, or nil when unassigned.
func (l *Load) CarrierID() *kernel.UUID {
	return l.carrierID
}

// DriverName returns the assigned driver's name.
func (l *Load) DriverName() string {
	return l.driverName
}

// DriverPhone returns the assigned driver's phone number.
func (l *Load) DriverPhone() string {
	return l.driverPhone
}

// EquipmentType returns the equipment the carrier runs for this load.
func (l *Load) EquipmentType() string {
	return l.equipmentType
}

// CurrentLocation returns the last reported position, or nil before the
// first tracking update.
func (l *Load) CurrentLocation() *kernel.GeoPoint {
	return l.currentLocation
}

// CurrentCity returns the last reported city.
func (l *Load) CurrentCity() string {
	return l.currentCity
}

// CurrentState returns the last reported state/province.
func (l *Load) CurrentState() string {
	return l.currentState
}

// ETA returns the last reported estimated time of arrival, or nil.
func (l *Load) ETA() *time.Time {
	return l.eta
}

// LastTrackingUpdate returns when the position was last refreshed, or nil.
func (l *Load) LastTrackingUpdate() *time.Time {
	return l.lastTrackingUpdate
}

// DeliveredAt returns when the load was delivered, or nil.
func (l *Load) DeliveredAt() *time.Time {
	return l.deliveredAt
}

// HasCarrier reports whether a carrier has been assigned.
func (l *Load) HasCarrier() bool {
	return l.carrierID != nil
}

// IsEqual compares two loads by identity.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// AssignCarrier sets the carrier, driver, and equipment fields and moves the
// load into ASSIGNED. Reassignment of an already assigned load keeps the
// status and replaces the assignment fields.
func (l *Load) AssignCarrier(carrierID kernel.UUID, driverName, driverPhone, equipmentType string) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	if l.status != StatusAssigned {
		next, err := l.status.TransitionTo(StatusAssigned)
		if err != nil {
			return err
		}
		l.status = next
	}

	l.carrierID = &carrierID
	l.driverName = driverName
	l.driverPhone = driverPhone
	l.equipmentType = equipmentType
	return nil
}

// Dispatch moves the load into DISPATCHED along the table. A PENDING load
// with no carrier cannot be dispatched because PENDING has no edge to
// DISPATCHED.
func (l *Load) Dispatch() error {
	next, err := l.status.TransitionTo(StatusDispatched)
	if err != nil {
		return err
	}

	l.status = next
	return nil
}

// ChangeStatus transitions the load along a declared edge of the transition
// table. On the transition into DELIVERED the deliveredAt timestamp is
// stamped once; later transitions never overwrite it.
func (l *Load) ChangeStatus(to Status, now time.Time) error {
	next, err := l.status.TransitionTo(to)
	if err != nil {
		return err
	}

	l.status = next
	if next == StatusDelivered && l.deliveredAt == nil {
		t := now
		l.deliveredAt = &t
	}
	return nil
}

// Cancel moves the load into CANCELLED if the table allows it from the
// current status.
func (l *Load) Cancel() error {
	next, err := l.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	l.status = next
	return nil
}

// UpdateDriverDetails replaces the driver and equipment fields without
// touching the carrier assignment or status.
func (l *Load) UpdateDriverDetails(driverName, driverPhone, equipmentType string) {
	l.driverName = driverName
	l.driverPhone = driverPhone
	l.equipmentType = equipmentType
}

// ApplyPositionUpdate overwrites the live tracking fields and stamps
// lastTrackingUpdate. It is the single position-update path shared by direct
// location updates and check calls. A nil eta leaves the stored ETA as is.
func (l *Load) ApplyPositionUpdate(position kernel.GeoPoint, city, state string, eta *time.Time, now time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}

	p := position
	l.currentLocation = &p
	l.currentCity = city
	l.currentState = state
	if eta != nil {
		t := *eta
		l.eta = &t
	}
	t := now
	l.lastTrackingUpdate = &t
	return nil
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.tenantID = id
	return nil
}

func (l *Load) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.orderID = id
	return nil
}

func (l *Load) setLoadNumber(n string) error {
	if n == "" {
		return ErrLoadNumberIsRequired
	}
	l.loadNumber = n
	return nil
}
