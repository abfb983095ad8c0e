// Package network models the municipality's traffic corridors and the ledger of
// people using them.
//
// The package includes:
//   - Corridor: An immutable, directed, capacity-bounded edge between two locations
//   - Traffic: A mutable ledger of positive loads per corridor with a safety predicate
//
// Key business rules:
//   - A corridor never starts and ends at the same location and has a positive capacity
//   - A ledger never stores a zero or negative load; reaching zero removes the corridor
//   - A ledger is safe when no corridor carries more than its capacity
package network
