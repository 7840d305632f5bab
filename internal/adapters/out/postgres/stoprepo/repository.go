package stoprepo

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/stop"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStopRepository implements StopRepository using GORM.
type GormStopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStopRepository creates a new GORM stop repository.
func NewGormStopRepository(db *gorm.DB, tracker aggregateTracker) *GormStopRepository {
	return &GormStopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stop to the database.
func (r *GormStopRepository) Add(ctx context.Context, aggregate *stop.Stop) error {
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

// Update saves an existing stop to the database. Arrival and departure
// stamps are selected explicitly; zero sequence values never occur.
func (r *GormStopRepository) Update(ctx context.Context, aggregate *stop.Stop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StopDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select(
			"stop_type", "sequence", "status",
			"address", "city", "state",
			"arrived_at", "departed_at", "signed_by", "notes",
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

// Get retrieves a stop by ID within a tenant.
func (r *GormStopRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*stop.Stop, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto StopDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all stops of an order ordered by sequence.
func (r *GormStopRepository) GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]*stop.Stop, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dtos []StopDTO
	if err := r.db.WithContext(ctx).
		Order("sequence").
		Find(&dtos, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error; err != nil {
		return nil, err
	}

	stops := make([]*stop.Stop, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}

	return stops, nil
}

// Delete removes a stop row. Lifecycle checks happen in the command layer.
func (r *GormStopRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&StopDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stop", id.String())
	}

	return nil
}
