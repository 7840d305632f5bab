package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tms/internal/core/domain/model/kernel"
)

// GetOrderHistoryQueryHandler reads the status ledger for an order and all
// of its loads in one pass.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the merged history query, newest entries first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			entity_type,
			entity_id,
			old_status,
			new_status,
			notes,
			occurred_at
		FROM status_history
		WHERE tenant_id = ?
		  AND (
			(entity_type = 'ORDER' AND entity_id = ?)
			OR (entity_type = 'LOAD' AND entity_id IN (
				SELECT id FROM loads WHERE tenant_id = ? AND order_id = ?
			))
		  )
		ORDER BY occurred_at DESC
	`, query.TenantID().Bytes(), query.OrderID().Bytes(),
		query.TenantID().Bytes(), query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetOrderHistoryQueryResponse
		var entityID uuid.UUID
		var occurredAt time.Time

		if err = rows.Scan(
			&record.EntityType,
			&entityID,
			&record.OldStatus,
			&record.NewStatus,
			&record.Notes,
			&occurredAt,
		); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(entityID[:])
		if idErr != nil {
			return nil, idErr
		}
		record.EntityID = id
		record.OccurredAt = occurredAt
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
