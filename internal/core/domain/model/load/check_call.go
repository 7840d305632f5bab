package load

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

// ErrCheckCallIsNotConstructed is returned when using an improperly
// initialized CheckCall.
var ErrCheckCallIsNotConstructed = errors.New("CheckCall must be created via NewCheckCall")

// CheckCall is an immutable position/status ping against a load. The caller
// supplies calledAt (when the driver actually reported in), which is distinct
// from recordedAt (when the record was written).
type CheckCall struct {
	id       kernel.UUID
	tenantID kernel.UUID
	loadID   kernel.UUID

	position kernel.GeoPoint
	city     string
	state    string

	statusNote string
	notes      string
	eta        *time.Time

	calledAt   time.Time
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewCheckCall creates an immutable check call record. A zero calledAt
// defaults to recordedAt.
func NewCheckCall(
	id, tenantID, loadID kernel.UUID,
	position kernel.GeoPoint,
	city, state, statusNote, notes string,
	eta *time.Time,
	calledAt, recordedAt time.Time,
) (*CheckCall, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		loadID.Validate(),
		position.Validate(),
	); err != nil {
		return nil, err
	}

	if calledAt.IsZero() {
		calledAt = recordedAt
	}

	return &CheckCall{
		id:         id,
		tenantID:   tenantID,
		loadID:     loadID,
		position:   position,
		city:       city,
		state:      state,
		statusNote: statusNote,
		notes:      notes,
		eta:        eta,
		calledAt:   calledAt,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CheckCall was properly constructed.
func (c *CheckCall) Validate() error {
	if c == nil {
		return ErrCheckCallIsNotConstructed
	}
	return c.guard.Validate(ErrCheckCallIsNotConstructed)
}

// ID returns the check call's unique identifier.
func (c *CheckCall) ID() kernel.UUID { return c.id }

// TenantID returns the owning tenant's identifier.
func (c *CheckCall) TenantID() kernel.UUID { return c.tenantID }

// LoadID returns the load this check call belongs to.
func (c *CheckCall) LoadID() kernel.UUID { return c.loadID }

// Position returns the reported position.
func (c *CheckCall) Position() kernel.GeoPoint { return c.position }

// City returns the reported city.
func (c *CheckCall) City() string { return c.city }

// State returns the reported state/province.
func (c *CheckCall) State() string { return c.state }

// StatusNote returns the free-form status text supplied by the caller.
func (c *CheckCall) StatusNote() string { return c.statusNote }

// Notes returns the free-form notes.
func (c *CheckCall) Notes() string { return c.notes }

// ETA returns the reported estimated time of arrival, or nil.
func (c *CheckCall) ETA() *time.Time { return c.eta }

// CalledAt returns when the driver reported in.
func (c *CheckCall) CalledAt() time.Time { return c.calledAt }

// RecordedAt returns when the record was written.
func (c *CheckCall) RecordedAt() time.Time { return c.recordedAt }
