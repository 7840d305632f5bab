// Package errs provides standardized error types for the TMS lifecycle core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the lifecycle core:
//   - ObjectNotFoundError: an entity is absent for the given tenant
//   - StatusTransitionError: a requested status is not reachable from the
//     current status per the entity's transition table
//   - ConflictError: a structural precondition failed (order deletion with
//     active loads, depart-before-arrive, re-arrival, and so on)
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Callers (HTTP adapter, jobs) classify errors with errors.Is against the
// sentinels rather than inspecting concrete types.
package errs
