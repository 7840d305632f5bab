package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order. Cancellation
// is rejected once the order is delivered or has entered the financial trail.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order. The reason is
// optional and lands in the ledger and the cancellation event.
func NewCancelOrderCommand(orderID, tenantID kernel.UUID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the owning tenant's identifier.
func (c CancelOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// Reason returns the caller-supplied cancellation reason, possibly empty.
func (c CancelOrderCommand) Reason() string { return c.reason }
