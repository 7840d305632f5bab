package commands

import (
	"context"
	"time"

	"tms/internal/core/domain/model/history"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

// appendHistory writes one status ledger entry. Handlers call it inside the
// open transaction so the ledger commits or rolls back together with the
// mutation it describes.
func appendHistory(
	ctx context.Context,
	repo ports.HistoryRepository,
	tenantID kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	oldStatus, newStatus, notes string,
	occurredAt time.Time,
) error {
	record, err := history.NewRecord(
		kernel.NewUUID(), tenantID, entityType, entityID,
		oldStatus, newStatus, notes, occurredAt,
	)
	if err != nil {
		return err
	}

	return repo.Add(ctx, record)
}
