// Package kernel provides core domain primitives shared across the bakery
// domain model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - TimeOfDay: a wall-clock time value object used for order due times
//
// These primitives are immutable, enforce their invariants through
// constructors, and fail validation as zero values, keeping the aggregates
// that embed them in a valid state.
package kernel
