package services

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/network"
)

// Venue is the capability the Allocator needs from a venue.
//
// Implementations must be identified by Name and must return a fresh ledger from
// TrafficFor on every call; the Allocator merges into what it receives.
type Venue interface {
	Name() string
	Capacity() int
	CanHost(e event.Event) bool
	TrafficFor(e event.Event) *network.Traffic
}

// Allocation maps events to the venues hosting them.
//
// An Allocation returned by Allocator.Allocate never reuses a venue, every venue can
// host its event, and the merged traffic of all pairs is safe. The zero value is the
// empty allocation.
type Allocation struct {
	venues map[event.Event]Venue
}

// Venue returns the venue hosting e.
func (a Allocation) Venue(e event.Event) (Venue, bool) {
	v, ok := a.venues[e]
	return v, ok
}

// Events returns the allocated events in event order.
func (a Allocation) Events() []event.Event {
	events := slices.Collect(maps.Keys(a.venues))
	slices.SortFunc(events, event.Event.Compare)
	return events
}

// All iterates over (event, venue) pairs in event order.
func (a Allocation) All() iter.Seq2[event.Event, Venue] {
	return func(yield func(event.Event, Venue) bool) {
		for _, e := range a.Events() {
			if !yield(e, a.venues[e]) {
				return
			}
		}
	}
}

// Len returns the number of allocated events.
func (a Allocation) Len() int {
	return len(a.venues)
}

// Traffic returns the traffic of every pair merged into one fresh ledger. Venues
// that report no traffic for their event are skipped.
func (a Allocation) Traffic() (*network.Traffic, error) {
	total := network.NewTraffic()
	for e, v := range a.venues {
		contribution := v.TrafficFor(e)
		if contribution == nil {
			continue
		}
		if err := total.AddTraffic(contribution); err != nil {
			return nil, fmt.Errorf("merge traffic of %s at %s: %w", e, v.Name(), err)
		}
	}
	return total, nil
}

// IsSafe reports whether the merged traffic of the allocation is safe. An
// allocation whose traffic cannot be merged is not safe.
func (a Allocation) IsSafe() bool {
	total, err := a.Traffic()
	if err != nil {
		return false
	}
	return total.IsSafe()
}

// String renders one "EVENT -> VENUE" line per pair in event order.
func (a Allocation) String() string {
	var sb strings.Builder
	for e, v := range a.All() {
		fmt.Fprintf(&sb, "%s -> %s (%d)%s", e, v.Name(), v.Capacity(), network.LineSeparator)
	}
	return sb.String()
}
