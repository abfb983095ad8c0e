// Package event provides the Event value object: a named gathering of a given size
// that has to be placed in a venue.
//
// Events are ordered by name and then by size, which is the order allocations and
// the planning board are rendered in.
package event
