// Package history contains the append-only status ledger. Every status
// mutation of an order, load, or stop produces one Record in the same
// transaction as the mutation itself.
package history

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is a single immutable entry in the status ledger. OldStatus is empty
// for the entry written at entity creation.
type Record struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	entityType string
	entityID   kernel.UUID
	oldStatus  string
	newStatus  string
	notes      string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a ledger entry for a status change of the given entity.
func NewRecord(
	id, tenantID kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	oldStatus, newStatus, notes string,
	occurredAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		entityID.Validate(),
	); err != nil {
		return nil, err
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entityType")
	}
	if newStatus == "" {
		return nil, errs.NewValueIsRequiredError("newStatus")
	}

	return &Record{
		id:         id,
		tenantID:   tenantID,
		entityType: entityType,
		entityID:   entityID,
		oldStatus:  oldStatus,
		newStatus:  newStatus,
		notes:      notes,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a Record from persistence.
func RestoreRecord(
	id, tenantID kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	oldStatus, newStatus, notes string,
	occurredAt time.Time,
) (*Record, error) {
	return NewRecord(id, tenantID, entityType, entityID, oldStatus, newStatus, notes, occurredAt)
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// TenantID returns the owning tenant's identifier.
func (r *Record) TenantID() kernel.UUID { return r.tenantID }

// EntityType returns the kind of entity the record is about (ORDER, LOAD, STOP).
func (r *Record) EntityType() string { return r.entityType }

// EntityID returns the identifier of the entity the record is about.
func (r *Record) EntityID() kernel.UUID { return r.entityID }

// OldStatus returns the status before the change, empty at creation.
func (r *Record) OldStatus() string { return r.oldStatus }

// NewStatus returns the status after the change.
func (r *Record) NewStatus() string { return r.newStatus }

// Notes returns the free-form annotation attached to the change.
func (r *Record) Notes() string { return r.notes }

// OccurredAt returns when the change happened.
func (r *Record) OccurredAt() time.Time { return r.occurredAt }
