// Package stop contains the Stop entity: a physical pickup or delivery
// waypoint belonging to an order, sequenced 1..N. Arrival and departure are
// one-shot transitions; the owning order's status is derived from its stops
// by the application layer.
package stop

import (
	"errors"
	"fmt"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// Type discriminates pickup waypoints from delivery waypoints.
type Type string

// Stop types.
const (
	TypePickup   Type = "PICKUP"
	TypeDelivery Type = "DELIVERY"
)

// Status is the stop's own three-state lifecycle:
// PENDING -> AT_PICKUP|AT_DELIVERY (by type) -> COMPLETED.
type Status string

// Stop lifecycle states.
const (
	StatusPending    Status = "PENDING"
	StatusAtPickup   Status = "AT_PICKUP"
	StatusAtDelivery Status = "AT_DELIVERY"
	StatusCompleted  Status = "COMPLETED"
)

var (
	// ErrStopIsNotConstructed is returned when a Stop instance was not created
	// through NewStop or RestoreStop.
	ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop")
	// ErrStopAlreadyArrived is returned on a second arrival.
	ErrStopAlreadyArrived = errs.NewConflictError("stop has already been arrived at")
	// ErrStopNotArrived is returned when departing a stop that was never
	// arrived at.
	ErrStopNotArrived = errs.NewConflictError("stop has not been arrived at")
	// ErrStopAlreadyDeparted is returned on a second departure.
	ErrStopAlreadyDeparted = errs.NewConflictError("stop has already been departed")
	// ErrStopIsNotDeletable is returned when deleting a stop after arrival.
	ErrStopIsNotDeletable = errs.NewConflictError("stop cannot be deleted after arrival")
)

// Validate checks that the type is PICKUP or DELIVERY.
func (t Type) Validate() error {
	if t != TypePickup && t != TypeDelivery {
		return errs.NewValueIsInvalidErrorWithCause("stop type",
			fmt.Errorf("%q is not a declared stop type", string(t)))
	}
	return nil
}

// ArrivalStatus returns the status a stop of this type enters on arrival.
func (t Type) ArrivalStatus() Status {
	if t == TypePickup {
		return StatusAtPickup
	}
	return StatusAtDelivery
}

// ParseType converts a raw string into a declared Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the status is one of the declared stop states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAtPickup, StatusAtDelivery, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stop status",
			fmt.Errorf("%q is not a declared stop status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Stop is a pickup or delivery waypoint within an order.
//
// Invariants:
//   - sequence is >= 1; within one order, sequences are exactly 1..count
//     (the application layer resequences on delete/reorder)
//   - departedAt is only set after arrivedAt, and never before it in time
//   - arrival and departure each happen at most once
type Stop struct {
	id       kernel.UUID
	tenantID kernel.UUID
	orderID  kernel.UUID

	stopType Type
	sequence int
	status   Status

	address string
	city    string
	state   string

	arrivedAt  *time.Time
	departedAt *time.Time
	signedBy   string
	notes      string

	guard guard.ConstructorGuard
}

// NewStop creates a new Stop in PENDING status. Sequence must be positive.
func NewStop(
	id, tenantID, orderID kernel.UUID,
	stopType Type,
	sequence int,
	address, city, state string,
) (*Stop, error) {
	s := &Stop{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTenantID(tenantID),
		s.setOrderID(orderID),
		s.setType(stopType),
		s.setSequence(sequence),
	); err != nil {
		return nil, err
	}

	s.address = address
	s.city = city
	s.state = state
	return s, nil
}

// RestoreStop reconstructs a Stop from persistence.
func RestoreStop(
	id, tenantID, orderID kernel.UUID,
	stopType Type,
	sequence int,
	status Status,
	address, city, state string,
	arrivedAt, departedAt *time.Time,
	signedBy, notes string,
) (*Stop, error) {
	s, err := NewStop(id, tenantID, orderID, stopType, sequence, address, city, state)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.arrivedAt = arrivedAt
	s.departedAt = departedAt
	s.signedBy = signedBy
	s.notes = notes
	return s, nil
}

// Validate ensures the Stop instance was properly constructed.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID { return s.id }

// TenantID returns the owning tenant's identifier.
func (s *Stop) TenantID() kernel.UUID { return s.tenantID }

// OrderID returns the owning order's identifier.
func (s *Stop) OrderID() kernel.UUID { return s.orderID }

// StopType returns PICKUP or DELIVERY.
func (s *Stop) StopType() Type { return s.stopType }

// Sequence returns the 1-based position within the order.
func (s *Stop) Sequence() int { return s.sequence }

// Status returns the current stop status.
func (s *Stop) Status() Status { return s.status }

// Address returns the street address of the waypoint.
func (s *Stop) Address() string { return s.address }

// City returns the waypoint city.
func (s *Stop) City() string { return s.city }

// State returns the waypoint state/province.
func (s *Stop) State() string { return s.state }

// ArrivedAt returns the arrival timestamp, or nil.
func (s *Stop) ArrivedAt() *time.Time { return s.arrivedAt }

// DepartedAt returns the departure timestamp, or nil.
func (s *Stop) DepartedAt() *time.Time { return s.departedAt }

// SignedBy returns who signed for the freight at departure.
func (s *Stop) SignedBy() string { return s.signedBy }

// Notes returns the departure notes.
func (s *Stop) Notes() string { return s.notes }

// HasArrived reports whether the stop was arrived at.
func (s *Stop) HasArrived() bool { return s.arrivedAt != nil }

// HasDeparted reports whether the stop was departed.
func (s *Stop) HasDeparted() bool { return s.departedAt != nil }

// MarkArrived records arrival: sets the type-specific arrival status and
// stamps arrivedAt. Re-arrival is a conflict.
func (s *Stop) MarkArrived(now time.Time) error {
	if s.HasArrived() {
		return ErrStopAlreadyArrived
	}

	t := now
	s.arrivedAt = &t
	s.status = s.stopType.ArrivalStatus()
	return nil
}

// MarkDeparted records departure: moves the stop to COMPLETED and stamps
// departedAt. Departure requires prior arrival, happens at most once, and
// cannot predate the arrival.
func (s *Stop) MarkDeparted(now time.Time, signedBy, notes string) error {
	if !s.HasArrived() {
		return ErrStopNotArrived
	}
	if s.HasDeparted() {
		return ErrStopAlreadyDeparted
	}
	if now.Before(*s.arrivedAt) {
		return errs.NewConflictError("departure cannot predate arrival")
	}

	t := now
	s.departedAt = &t
	s.status = StatusCompleted
	s.signedBy = signedBy
	s.notes = notes
	return nil
}

// Resequence moves the stop to a new 1-based position. Used by reorder and
// by gap-closing after a deletion.
func (s *Stop) Resequence(sequence int) error {
	return s.setSequence(sequence)
}

// IsDeletable reports whether the stop may still be removed. An in-progress
// or completed waypoint cannot be retracted.
func (s *Stop) IsDeletable() bool {
	return !s.HasArrived()
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.tenantID = id
	return nil
}

func (s *Stop) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.orderID = id
	return nil
}

func (s *Stop) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.stopType = t
	return nil
}

func (s *Stop) setSequence(seq int) error {
	if seq < 1 {
		return errs.NewValueIsInvalidErrorWithCause("stopSequence",
			fmt.Errorf("%d is not a positive sequence number", seq))
	}
	s.sequence = seq
	return nil
}
