// Package order provides the Order aggregate for the bakery: the customer's
// purchase request with a due date and time, its product lines, and an audit
// log of lifecycle events.
//
// The package includes:
//   - Order: the aggregate root owning customer details, items, and history
//   - Status: the closed lifecycle enumeration (New .. Cancelled)
//   - OrderItem: a product line with quantity and optional comment
//   - HistoryItem: an immutable audit entry for state changes and comments
//   - Customer: contact details owned by exactly one order
//
// Key business rules:
//   - Every state change appends exactly one history entry
//   - History is ordered by non-decreasing timestamp and never empty
//   - No two items on one order reference the same product
//   - Transition reachability is intentionally not validated; callers pick
//     contextually valid transitions
package order
