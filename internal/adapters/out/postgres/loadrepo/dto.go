// Package loadrepo persists load aggregates and their check-call trail.
package loadrepo

import (
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Tracking fields are nullable: a load has no position until the first
// check call or location update arrives.
type LoadDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:idx_loads_tenant_number"`
	OrderID            uuid.UUID  `gorm:"type:uuid;index"`
	LoadNumber         string     `gorm:"uniqueIndex:idx_loads_tenant_number"`
	Status             string     `gorm:"index"`
	CarrierID          *uuid.UUID `gorm:"type:uuid;index"`
	DriverName         string
	DriverPhone        string
	EquipmentType      string
	Lat                *float64
	Lng                *float64
	CurrentCity        string
	CurrentState       string
	ETA                *time.Time
	LastTrackingUpdate *time.Time `gorm:"index"`
	DeliveredAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// CheckCallDTO represents one row of a load's tracking trail.
type CheckCallDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	LoadID     uuid.UUID `gorm:"type:uuid;index"`
	Lat        float64
	Lng        float64
	City       string
	State      string
	StatusNote string
	Notes      string
	ETA        *time.Time
	CalledAt   time.Time `gorm:"index"`
	RecordedAt time.Time
}

// TableName specifies the database table name for check calls.
func (CheckCallDTO) TableName() string {
	return "check_calls"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(aggregate *load.Load) LoadDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	var lat, lng *float64
	if position := aggregate.CurrentLocation(); position != nil {
		latValue, lngValue := position.Lat(), position.Lng()
		lat, lng = &latValue, &lngValue
	}

	return LoadDTO{
		ID:                 aggregate.ID().Bytes(),
		TenantID:           aggregate.TenantID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		LoadNumber:         aggregate.LoadNumber(),
		Status:             string(aggregate.Status()),
		CarrierID:          carrierID,
		DriverName:         aggregate.DriverName(),
		DriverPhone:        aggregate.DriverPhone(),
		EquipmentType:      aggregate.EquipmentType(),
		Lat:                lat,
		Lng:                lng,
		CurrentCity:        aggregate.CurrentCity(),
		CurrentState:       aggregate.CurrentState(),
		ETA:                aggregate.ETA(),
		LastTrackingUpdate: aggregate.LastTrackingUpdate(),
		DeliveredAt:        aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a load domain aggregate using RestoreLoad.
func toDomain(dto LoadDTO) (*load.Load, error) {
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

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	var currentLocation *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		position, posErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if posErr != nil {
			return nil, posErr
		}
		currentLocation = &position
	}

	return load.RestoreLoad(
		id, tenantID, orderID,
		dto.LoadNumber,
		load.Status(dto.Status),
		carrierID,
		dto.DriverName, dto.DriverPhone, dto.EquipmentType,
		currentLocation,
		dto.CurrentCity, dto.CurrentState,
		dto.ETA, dto.LastTrackingUpdate, dto.DeliveredAt,
	)
}

// checkCallFromDomain converts a check call to its database representation.
func checkCallFromDomain(checkCall *load.CheckCall) CheckCallDTO {
	return CheckCallDTO{
		ID:         checkCall.ID().Bytes(),
		TenantID:   checkCall.TenantID().Bytes(),
		LoadID:     checkCall.LoadID().Bytes(),
		Lat:        checkCall.Position().Lat(),
		Lng:        checkCall.Position().Lng(),
		City:       checkCall.City(),
		State:      checkCall.State(),
		StatusNote: checkCall.StatusNote(),
		Notes:      checkCall.Notes(),
		ETA:        checkCall.ETA(),
		CalledAt:   checkCall.CalledAt(),
		RecordedAt: checkCall.RecordedAt(),
	}
}

// checkCallToDomain converts a database DTO to a check call.
func checkCallToDomain(dto CheckCallDTO) (*load.CheckCall, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}
	position, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return load.NewCheckCall(
		id, tenantID, loadID,
		position,
		dto.City, dto.State, dto.StatusNote, dto.Notes,
		dto.ETA,
		dto.CalledAt, dto.RecordedAt,
	)
}
