// Package historyrepo persists the append-only status ledger.
package historyrepo

import (
	"time"

	"tms/internal/core/domain/model/history"

	"github.com/google/uuid"
)

// RecordDTO represents one immutable row of the status ledger.
type RecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	EntityType string    `gorm:"index:idx_status_history_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;index:idx_status_history_entity"`
	OldStatus  string
	NewStatus  string
	Notes      string
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for the ledger.
func (RecordDTO) TableName() string {
	return "status_history"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(record *history.Record) RecordDTO {
	return RecordDTO{
		ID:         record.ID().Bytes(),
		TenantID:   record.TenantID().Bytes(),
		EntityType: record.EntityType(),
		EntityID:   record.EntityID().Bytes(),
		OldStatus:  record.OldStatus(),
		NewStatus:  record.NewStatus(),
		Notes:      record.Notes(),
		OccurredAt: record.OccurredAt(),
	}
}
