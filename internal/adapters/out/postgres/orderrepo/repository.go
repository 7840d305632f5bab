package orderrepo

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
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

// Get retrieves an order by ID within a tenant.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order row. Lifecycle checks happen in the command layer.
func (r *GormOrderRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
