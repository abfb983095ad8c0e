package ports

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/venue"
)

// ErrVenueSourceInvalid is the root of the errors a VenueReader returns for a
// malformed description.
var ErrVenueSourceInvalid = errors.New("venue source is invalid")

// VenueReader loads a venue catalogue from an external description, such as a file.
type VenueReader interface {
	// Read returns the venues in the order they are described.
	// A malformed description is reported with an error wrapping ErrVenueSourceInvalid;
	// no partial catalogue is returned.
	Read(ctx context.Context) ([]*venue.Venue, error)
}
