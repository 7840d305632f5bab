// Package stoprepo persists the stops of an order's route.
package stoprepo

import (
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/stop"

	"github.com/google/uuid"
)

// StopDTO represents the database structure for persisting stops.
// The sequence is unique per order so route positions never collide.
type StopDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	StopType   string
	Sequence   int `gorm:"index"`
	Status     string
	Address    string
	City       string
	State      string
	ArrivedAt  *time.Time
	DepartedAt *time.Time
	SignedBy   string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for stops.
func (StopDTO) TableName() string {
	return "stops"
}

// fromDomain converts a stop domain entity to its database representation.
func fromDomain(aggregate *stop.Stop) StopDTO {
	return StopDTO{
		ID:         aggregate.ID().Bytes(),
		TenantID:   aggregate.TenantID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		StopType:   string(aggregate.StopType()),
		Sequence:   aggregate.Sequence(),
		Status:     aggregate.Status().String(),
		Address:    aggregate.Address(),
		City:       aggregate.City(),
		State:      aggregate.State(),
		ArrivedAt:  aggregate.ArrivedAt(),
		DepartedAt: aggregate.DepartedAt(),
		SignedBy:   aggregate.SignedBy(),
		Notes:      aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a stop domain entity using RestoreStop.
func toDomain(dto StopDTO) (*stop.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return stop.RestoreStop(
		id, tenantID, orderID,
		stop.Type(dto.StopType),
		dto.Sequence,
		stop.Status(dto.Status),
		dto.Address, dto.City, dto.State,
		dto.ArrivedAt, dto.DepartedAt,
		dto.SignedBy, dto.Notes,
	)
}
