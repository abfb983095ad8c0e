// Package ports defines the contracts between the planner core and its infrastructure.
// These interfaces establish the boundaries the adapters implement, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"planner/internal/core/domain/model/venue"
)

// VenueRepository defines the persistence contract for the venue catalogue.
// The catalogue keeps the order venues were imported in; the allocator tries
// venues in that order.
type VenueRepository interface {
	// ReplaceAll swaps the whole catalogue for venues, keeping their order.
	// Venue names must be unique.
	ReplaceAll(ctx context.Context, venues []*venue.Venue) error

	// Get retrieves a venue by its name.
	// Returns an errs.ObjectNotFoundError if there is no such venue.
	Get(ctx context.Context, name string) (*venue.Venue, error)

	// GetAll retrieves every venue in catalogue order together with its traffic.
	GetAll(ctx context.Context) ([]*venue.Venue, error)
}
