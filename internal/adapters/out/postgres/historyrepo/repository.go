package historyrepo

import (
	"context"

	"tms/internal/core/domain/model/history"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// The ledger only ever grows; there is no update or delete path.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends a record to the ledger.
func (r *GormHistoryRepository) Add(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
