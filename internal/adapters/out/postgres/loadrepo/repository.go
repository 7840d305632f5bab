package loadrepo

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
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

// Update saves an existing load to the database. Nullable tracking columns
// are written with Select so that clearing a value is not silently skipped.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select(
			"status", "carrier_id",
			"driver_name", "driver_phone", "equipment_type",
			"lat", "lng", "current_city", "current_state",
			"eta", "last_tracking_update", "delivered_at",
			"updated_at",
		).
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

// Get retrieves a load by ID within a tenant.
func (r *GormLoadRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*load.Load, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all loads created from the given order.
func (r *GormLoadRepository) GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]*load.Load, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dtos []LoadDTO
	if err := r.db.WithContext(ctx).
		Order("load_number").
		Find(&dtos, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error; err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}

// Delete removes a load row. Lifecycle checks happen in the command layer.
func (r *GormLoadRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&LoadDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}

	return nil
}

// GormCheckCallRepository implements CheckCallRepository using GORM.
type GormCheckCallRepository struct {
	db *gorm.DB
}

// NewGormCheckCallRepository creates a new GORM check-call repository.
func NewGormCheckCallRepository(db *gorm.DB) *GormCheckCallRepository {
	return &GormCheckCallRepository{db: db}
}

// Add appends a check call to the trail.
func (r *GormCheckCallRepository) Add(ctx context.Context, checkCall *load.CheckCall) error {
	if err := checkCall.Validate(); err != nil {
		return err
	}

	dto := checkCallFromDomain(checkCall)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByLoad retrieves all check calls for a load, most recent first.
func (r *GormCheckCallRepository) GetByLoad(ctx context.Context, tenantID, loadID kernel.UUID) ([]*load.CheckCall, error) {
	if err := errors.Join(tenantID.Validate(), loadID.Validate()); err != nil {
		return nil, err
	}

	var dtos []CheckCallDTO
	if err := r.db.WithContext(ctx).
		Order("called_at DESC").
		Find(&dtos, "load_id = ? AND tenant_id = ?", loadID.Bytes(), tenantID.Bytes()).Error; err != nil {
		return nil, err
	}

	calls := make([]*load.CheckCall, 0, len(dtos))
	for _, dto := range dtos {
		c, err := checkCallToDomain(dto)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}

	return calls, nil
}
