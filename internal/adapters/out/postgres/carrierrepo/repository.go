package carrierrepo

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/carrier"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier to the database.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CarrierDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID within a tenant.
func (r *GormCarrierRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*carrier.Carrier, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
