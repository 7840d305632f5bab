// Package kernel contains shared value objects used across all aggregates of
// the lifecycle core: tenant-scoped identities and validated geographic
// coordinates. Value objects are immutable and must be created through their
// constructor functions; zero values fail Validate.
package kernel
