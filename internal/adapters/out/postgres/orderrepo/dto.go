// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Every row is tenant-scoped; the order number is unique within a tenant.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_orders_tenant_number"`
	OrderNumber   string    `gorm:"uniqueIndex:idx_orders_tenant_number"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	Status        string    `gorm:"index"`
	Rate          float64
	FuelSurcharge float64
	Accessorials  float64
	CustomFields  []byte `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var customFields []byte
	if fields := aggregate.CustomFields(); fields != nil {
		raw, err := json.Marshal(fields)
		if err != nil {
			return OrderDTO{}, err
		}
		customFields = raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		TenantID:      aggregate.TenantID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Status:        string(aggregate.Status()),
		Rate:          aggregate.Rate(),
		FuelSurcharge: aggregate.FuelSurcharge(),
		Accessorials:  aggregate.Accessorials(),
		CustomFields:  customFields,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var customFields map[string]any
	if len(dto.CustomFields) > 0 {
		if err = json.Unmarshal(dto.CustomFields, &customFields); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id, tenantID, customerID,
		dto.OrderNumber,
		order.Status(dto.Status),
		dto.Rate, dto.FuelSurcharge, dto.Accessorials,
		customFields,
	)
}
