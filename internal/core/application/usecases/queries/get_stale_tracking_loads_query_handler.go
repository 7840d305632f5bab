package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
)

// GetStaleTrackingLoadsQueryHandler finds in-flight loads that have stopped
// reporting positions. Feeds the tracking watchdog job.
type GetStaleTrackingLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleTrackingLoadsQueryHandler creates a handler for stale-tracking queries.
func NewGetStaleTrackingLoadsQueryHandler(db *gorm.DB) GetStaleTrackingLoadsQueryHandler {
	return GetStaleTrackingLoadsQueryHandler{db: db}
}

// Handle executes the query. Loads without any tracking update yet are not
// reported, the watchdog only flags trails that went quiet.
func (h GetStaleTrackingLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleTrackingLoadsQuery,
) ([]GetStaleTrackingLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads := make([]GetStaleTrackingLoadsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tenant_id,
			load_number,
			status,
			last_tracking_update
		FROM loads
		WHERE status IN (?, ?, ?, ?)
		  AND last_tracking_update IS NOT NULL
		  AND last_tracking_update < ?
		ORDER BY last_tracking_update
	`, load.StatusDispatched, load.StatusInTransit,
		load.StatusAtPickup, load.StatusAtDelivery,
		query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var staleLoad GetStaleTrackingLoadsQueryResponse
		var id, tenantID uuid.UUID
		var lastUpdate time.Time

		err = rows.Scan(
			&id,
			&tenantID,
			&staleLoad.LoadNumber,
			&staleLoad.Status,
			&lastUpdate,
		)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		loadTenantID, idErr := kernel.UUIDFromBytes(tenantID[:])
		if idErr != nil {
			return nil, idErr
		}
		staleLoad.LoadID = loadID
		staleLoad.TenantID = loadTenantID
		staleLoad.LastTrackingUpdate = lastUpdate
		loads = append(loads, staleLoad)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
