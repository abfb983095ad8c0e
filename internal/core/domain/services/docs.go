// Package services provides domain services that work across the planner's entities.
//
// The package includes:
//   - Allocator: A backtracking search for a safe allocation of events to venues
//   - Allocation: The event to venue mapping it produces
//   - Venue: The capability contract the search consumes
//
// The search is exponential in the number of events and is meant for small
// planning instances. It is synchronous, performs no I/O, and never mutates its
// inputs, so concurrent calls over disjoint inputs are independent.
package services
