// Package sequencerepo hands out business-number counters backed by a
// single-row-per-key upsert, so concurrent callers never see the same value.
package sequencerepo

import (
	"context"
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SequenceDTO represents one counter row keyed by tenant, prefix, and period.
type SequenceDTO struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Prefix    string    `gorm:"primaryKey"`
	Period    string    `gorm:"primaryKey"`
	Counter   int64
	UpdatedAt time.Time
}

// TableName specifies the database table name for sequence counters.
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceRepository implements SequenceRepository using GORM.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next atomically increments and returns the counter for the given key.
// The upsert takes a row lock, so two transactions issuing numbers for the
// same key serialize instead of colliding.
func (r *GormSequenceRepository) Next(ctx context.Context, tenantID kernel.UUID, prefix, period string) (int64, error) {
	if err := tenantID.Validate(); err != nil {
		return 0, err
	}
	if prefix == "" {
		return 0, errs.NewValueIsRequiredError("prefix")
	}
	if period == "" {
		return 0, errs.NewValueIsRequiredError("period")
	}

	var counter int64
	row := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (tenant_id, prefix, period, counter, updated_at)
		VALUES (?, ?, ?, 1, NOW())
		ON CONFLICT (tenant_id, prefix, period)
		DO UPDATE SET counter = sequences.counter + 1, updated_at = NOW()
		RETURNING counter
	`, tenantID.Bytes(), prefix, period).Row()
	if row == nil {
		return 0, errors.New("sequence upsert returned no row")
	}
	if err := row.Scan(&counter); err != nil {
		return 0, err
	}

	return counter, nil
}
