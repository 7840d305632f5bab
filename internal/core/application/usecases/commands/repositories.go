// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// history recording, and post-commit event publication.
package commands

import (
	"context"

	"tms/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// CheckCallRepoFactory provides access to the check call repository within a transaction.
	CheckCallRepoFactory interface {
		CheckCallRepository() ports.CheckCallRepository
	}

	// StopRepoFactory provides access to the stop repository within a transaction.
	StopRepoFactory interface {
		StopRepository() ports.StopRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// HistoryRepoFactory provides access to the status ledger within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// SequenceRepoFactory provides access to the sequence counter within a transaction.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// OrderUoW manages transactions for order-centric operations. Order
	// commands also reach into stops (initial stop persistence, deletion)
	// and loads (dispatch and delete preconditions).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StopRepoFactory
		LoadRepoFactory
		HistoryRepoFactory
		SequenceRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LoadUoW manages transactions for load-centric operations. Load commands
	// also read the owning order (existence checks) and the carrier registry
	// (assignment), and append check calls.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
		CheckCallRepoFactory
		OrderRepoFactory
		CarrierRepoFactory
		HistoryRepoFactory
		SequenceRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// StopUoW manages transactions for stop-centric operations. Stop
	// transitions cascade onto the owning order in the same transaction.
	StopUoW interface {
		TxManager
		StopRepoFactory
		OrderRepoFactory
		HistoryRepoFactory
	}

	// StopUoWFactory creates new stop unit of work instances.
	StopUoWFactory interface {
		Create() StopUoW
	}
)
