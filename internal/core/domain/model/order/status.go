package order

import (
	"fmt"

	"tms/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is persisted as a
// string and validated against an explicit transition table rather than
// ad hoc checks near each call site.
type Status string

// Order lifecycle states.
const (
	StatusPending    Status = "PENDING"
	StatusQuoted     Status = "QUOTED"
	StatusDispatched Status = "DISPATCHED"
	StatusInTransit  Status = "IN_TRANSIT"
	StatusAtPickup   Status = "AT_PICKUP"
	StatusAtDelivery Status = "AT_DELIVERY"
	StatusDelivered  Status = "DELIVERED"
	StatusInvoiced   Status = "INVOICED"
	StatusPaid       Status = "PAID"
	StatusCancelled  Status = "CANCELLED"
)

// transitions is the complete order state machine. Any edge not listed here
// is rejected. PAID is terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusQuoted, StatusDispatched, StatusCancelled},
	StatusQuoted:     {StatusPending, StatusDispatched, StatusCancelled},
	StatusDispatched: {StatusInTransit, StatusCancelled, StatusPending},
	StatusInTransit:  {StatusAtPickup, StatusAtDelivery, StatusDelivered},
	StatusAtPickup:   {StatusInTransit},
	StatusAtDelivery: {StatusDelivered, StatusInTransit},
	StatusDelivered:  {StatusInvoiced},
	StatusInvoiced:   {StatusPaid},
	StatusPaid:       {},
	StatusCancelled:  {StatusPending},
}

// nonCancellable are the states from which an order can no longer be
// cancelled: delivery has happened or the financial trail has started.
var nonCancellable = map[Status]bool{
	StatusDelivered: true,
	StatusInvoiced:  true,
	StatusPaid:      true,
	StatusCancelled: true,
}

func init() {
	mustValidateTransitionTable()
}

// mustValidateTransitionTable checks the table for referential consistency:
// every listed next-state must itself be a declared state.
func mustValidateTransitionTable() {
	for from, tos := range transitions {
		for _, to := range tos {
			if _, ok := transitions[to]; !ok {
				panic(fmt.Sprintf("order status table: %s lists undeclared state %s", from, to))
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

// Validate checks that the status is one of the declared order states.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%q is not a declared order status", string(s)))
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

// CanCancel reports whether the order may still be cancelled from this status.
func (s Status) CanCancel() bool {
	return !nonCancellable[s]
}

// IsActive reports whether the order is still in execution, meaning neither
// cancelled nor in the post-delivery financial trail.
func (s Status) IsActive() bool {
	return !nonCancellable[s]
}
