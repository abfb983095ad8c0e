package venue

import (
	"errors"
	"fmt"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/network"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

// ErrVenueIsNotConstructed is returned when using a Venue that was not created via NewVenue.
var ErrVenueIsNotConstructed = errors.New("Venue must be created via NewVenue constructor")

// Venue is a place that can host at most one event at a time.
//
// Key responsibilities:
//   - Reporting whether it is large enough for an event
//   - Publishing the corridor traffic it generates while hosting an event
//
// Business rules:
//   - A venue is identified by its name
//   - Capacity must be positive
//   - A venue can host an event iff its capacity is at least the event size
//   - The traffic a venue generates does not depend on the size of the hosted event;
//     it is the load configured for the venue, produced by a full house
//
// The configured traffic is owned by the venue. Every accessor hands out a copy, so
// callers can merge or mutate what they receive without touching the venue.
//
// Example usage:
//
//	traffic := network.NewTraffic()
//	_ = traffic.UpdateTraffic(annerleyToCity, 60)
//	stadium, err := venue.NewVenue("Stadium", 60, traffic)
//	if err != nil {
//	    // Handle construction error
//	}
//	stadium.CanHost(concert) // true if concert.Size() <= 60
type Venue struct {
	name     string
	capacity int
	traffic  *network.Traffic
	guard    guard.ConstructorGuard
}

// NewVenue creates a Venue with the given name, capacity and configured traffic.
//
// Parameters:
//   - name: The unique venue name (must be non-empty)
//   - capacity: The number of people the venue holds (must be > 0)
//   - traffic: The corridor load the venue generates while hosting (must not be nil);
//     the venue keeps its own copy
//
// Returns:
//   - *Venue: The created venue
//   - error: Every violated rule joined together
func NewVenue(name string, capacity int, traffic *network.Traffic) (*Venue, error) {
	v := &Venue{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setName(name),
		v.setCapacity(capacity),
		v.setTraffic(traffic),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Venue was properly constructed through NewVenue.
func (v *Venue) Validate() error {
	if v == nil {
		return ErrVenueIsNotConstructed
	}
	return v.guard.Validate(ErrVenueIsNotConstructed)
}

// IsEqual compares venues by name.
func (v *Venue) IsEqual(other *Venue) bool {
	return other != nil && v.name == other.name
}

// SameDescription reports whether other has the same name, capacity and traffic.
func (v *Venue) SameDescription(other *Venue) bool {
	return v.IsEqual(other) &&
		v.capacity == other.capacity &&
		v.traffic.SameTraffic(other.traffic)
}

// Name returns the venue name.
func (v *Venue) Name() string {
	return v.name
}

// Capacity returns the number of people the venue holds.
func (v *Venue) Capacity() int {
	return v.capacity
}

// Traffic returns a copy of the traffic configured for the venue.
func (v *Venue) Traffic() *network.Traffic {
	return v.traffic.Copy()
}

// CanHost reports whether the venue is large enough for e.
func (v *Venue) CanHost(e event.Event) bool {
	return e.Validate() == nil && v.capacity >= e.Size()
}

// TrafficFor returns the traffic generated if the venue hosted e.
//
// The result is always a fresh ledger: a copy of the configured traffic when the venue
// can host e, and an empty ledger otherwise.
func (v *Venue) TrafficFor(e event.Event) *network.Traffic {
	if !v.CanHost(e) {
		return network.NewTraffic()
	}
	return v.traffic.Copy()
}

// String returns "NAME (CAPACITY)".
func (v *Venue) String() string {
	return fmt.Sprintf("%s (%d)", v.name, v.capacity)
}

// CheckInvariant reports whether the venue satisfies its invariant. Intended for tests.
func (v *Venue) CheckInvariant() bool {
	return v.Validate() == nil &&
		v.name != "" &&
		v.capacity > 0 &&
		v.traffic != nil &&
		v.traffic.CheckInvariant()
}

func (v *Venue) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	v.name = name
	return nil
}

func (v *Venue) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, "unbounded")
	}

	v.capacity = capacity
	return nil
}

func (v *Venue) setTraffic(traffic *network.Traffic) error {
	if traffic == nil {
		return errs.NewValueIsRequiredError("traffic")
	}

	v.traffic = traffic.Copy()
	return nil
}
