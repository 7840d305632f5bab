package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tms/internal/core/domain/model/kernel"
)

// GetLoadCheckCallsQueryHandler retrieves the check-call trail of a load.
type GetLoadCheckCallsQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadCheckCallsQueryHandler creates a handler for check-call queries.
func NewGetLoadCheckCallsQueryHandler(db *gorm.DB) GetLoadCheckCallsQueryHandler {
	return GetLoadCheckCallsQueryHandler{db: db}
}

// Handle executes the query, newest check calls first.
func (h GetLoadCheckCallsQueryHandler) Handle(
	ctx context.Context,
	query GetLoadCheckCallsQuery,
) ([]GetLoadCheckCallsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	calls := make([]GetLoadCheckCallsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			lat,
			lng,
			city,
			state,
			status_note,
			notes,
			eta,
			called_at,
			recorded_at
		FROM check_calls
		WHERE tenant_id = ? AND load_id = ?
		ORDER BY called_at DESC
	`, query.TenantID().Bytes(), query.LoadID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var call GetLoadCheckCallsQueryResponse
		var id uuid.UUID
		var eta sql.NullTime
		var calledAt, recordedAt time.Time

		err = rows.Scan(
			&id,
			&call.Lat,
			&call.Lng,
			&call.City,
			&call.State,
			&call.StatusNote,
			&call.Notes,
			&eta,
			&calledAt,
			&recordedAt,
		)
		if err != nil {
			return nil, err
		}

		callID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		call.ID = callID
		if eta.Valid {
			etaValue := eta.Time
			call.ETA = &etaValue
		}
		call.CalledAt = calledAt
		call.RecordedAt = recordedAt
		calls = append(calls, call)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return calls, nil
}
