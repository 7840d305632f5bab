// Package carrierrepo persists carrier records.
package carrierrepo

import (
	"time"

	"tms/internal/core/domain/model/carrier"
	"tms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carriers.
type CarrierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	MCNumber  string `gorm:"column:mc_number"`
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for carriers.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain entity to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:       aggregate.ID().Bytes(),
		TenantID: aggregate.TenantID().Bytes(),
		Name:     aggregate.Name(),
		MCNumber: aggregate.MCNumber(),
		Status:   string(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a carrier domain entity using RestoreCarrier.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, tenantID, dto.Name, dto.MCNumber, carrier.Status(dto.Status))
}
