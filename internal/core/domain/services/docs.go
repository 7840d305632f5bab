// Package services provides domain services that orchestrate business
// operations spanning multiple aggregates or requiring infrastructure
// collaboration via ports.
//
// The package includes:
//   - NumberGenerator: builds human-readable order and load numbers from
//     an atomic per-tenant sequence counter
package services
