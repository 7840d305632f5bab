// Package carrier contains the Carrier entity: a trucking company that loads
// are tendered to. The entity is deliberately small, only what carrier
// assignment needs.
package carrier

import (
	"errors"
	"fmt"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// Status is the carrier's operational state.
type Status string

// Carrier states.
const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

var (
	// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
	// created through NewCarrier or RestoreCarrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")
	// ErrCarrierIsNotActive is returned when assigning an inactive carrier.
	ErrCarrierIsNotActive = errs.NewConflictError("carrier is not active")
)

// Validate checks that the status is ACTIVE or INACTIVE.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause("carrier status",
			fmt.Errorf("%q is not a declared carrier status", string(s)))
	}
	return nil
}

// Carrier is a trucking company registered with a tenant.
type Carrier struct {
	id       kernel.UUID
	tenantID kernel.UUID
	name     string
	mcNumber string
	status   Status

	guard guard.ConstructorGuard
}

// NewCarrier creates an active carrier.
func NewCarrier(id, tenantID kernel.UUID, name, mcNumber string) (*Carrier, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("carrierName")
	}

	return &Carrier{
		id:       id,
		tenantID: tenantID,
		name:     name,
		mcNumber: mcNumber,
		status:   StatusActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreCarrier reconstructs a Carrier from persistence.
func RestoreCarrier(id, tenantID kernel.UUID, name, mcNumber string, status Status) (*Carrier, error) {
	c, err := NewCarrier(id, tenantID, name, mcNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	c.status = status
	return c, nil
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID { return c.id }

// TenantID returns the owning tenant's identifier.
func (c *Carrier) TenantID() kernel.UUID { return c.tenantID }

// Name returns the carrier's legal name.
func (c *Carrier) Name() string { return c.name }

// MCNumber returns the carrier's motor carrier number.
func (c *Carrier) MCNumber() string { return c.mcNumber }

// Status returns the carrier's operational state.
func (c *Carrier) Status() Status { return c.status }

// IsActive reports whether loads may be tendered to the carrier.
func (c *Carrier) IsActive() bool { return c.status == StatusActive }

// Deactivate takes the carrier out of rotation.
func (c *Carrier) Deactivate() { c.status = StatusInactive }
