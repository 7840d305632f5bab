package load

import (
	"fmt"

	"tms/internal/pkg/errs"
)

// Status represents the lifecycle state of a load. One canonical vocabulary
// is used everywhere; there is no TENDERED/ACCEPTED variant.
type Status string

// Load lifecycle states.
const (
	StatusPending    Status = "PENDING"
	StatusAssigned   Status = "ASSIGNED"
	StatusDispatched Status = "DISPATCHED"
	StatusInTransit  Status = "IN_TRANSIT"
	StatusAtPickup   Status = "AT_PICKUP"
	StatusAtDelivery Status = "AT_DELIVERY"
	StatusDelivered  Status = "DELIVERED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// transitions is the complete load state machine. Any edge not listed here is
// rejected. COMPLETED is terminal; CANCELLED can be reopened to PENDING.
var transitions = map[Status][]Status{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusDispatched, StatusPending, StatusCancelled},
	StatusDispatched: {StatusInTransit, StatusCancelled},
	StatusInTransit:  {StatusAtPickup, StatusAtDelivery, StatusDelivered},
	StatusAtPickup:   {StatusInTransit},
	StatusAtDelivery: {StatusDelivered, StatusInTransit},
	StatusDelivered:  {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {StatusPending},
}

func init() {
	mustValidateTransitionTable()
}

func mustValidateTransitionTable() {
	for from, tos := range transitions {
		for _, to := range tos {
			if _, ok := transitions[to]; !ok {
				panic(fmt.Sprintf("load status table: %s lists undeclared state %s", from, to))
			}
		}
	}
}

// ParseStatus converts a raw string into a declared Status.
// Returns a validation error for unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that the status is one of the declared load states.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("load status",
			fmt.Errorf("%q is not a declared load status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the edge s -> to is declared in the table.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the next status if the edge is declared, or a
// StatusTransitionError otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(to) {
		return "", errs.NewStatusTransitionError(EntityType, string(s), string(to))
	}
	return to, nil
}

// IsDeletable reports whether a load in this status may be removed.
// Only loads that never left the yard or were cancelled can be deleted.
func (s Status) IsDeletable() bool {
	return s == StatusPending || s == StatusCancelled
}

// IsActive reports whether the load is still in execution.
func (s Status) IsActive() bool {
	return s != StatusCompleted && s != StatusCancelled
}
