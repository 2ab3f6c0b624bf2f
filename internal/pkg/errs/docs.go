// Package errs provides standardized error types for the bakery application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsInvalid)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain constructors and adapters build on these types so that callers can
// classify failures without string matching.
package errs
