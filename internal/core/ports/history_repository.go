package ports

import (
	"context"

	"tms/internal/core/domain/model/history"
)

// HistoryRepository defines the persistence contract for the status ledger.
// The ledger is append-only; entries are written in the same transaction as
// the status change they describe and are never modified afterwards.
type HistoryRepository interface {
	// Add appends a record to the ledger.
	Add(ctx context.Context, record *history.Record) error
}
