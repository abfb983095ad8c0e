package services

import (
	"fmt"
	"slices"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/network"
	"planner/internal/pkg/errs"
)

// Allocator is a domain service that finds a safe allocation of events to venues.
//
// Key responsibilities:
//   - Rejecting malformed input before any search starts
//   - Exploring event-to-venue assignments by backtracking
//   - Pruning every branch whose corridor traffic is already unsafe
//
// Business rules:
//   - Every event gets exactly one venue and no venue hosts two events
//   - A venue is only tried for an event it can host
//   - The traffic of all chosen venues, summed per corridor, stays within capacity
//
// Events are placed in the order given and venues are tried in the order given, so
// the result is deterministic for deterministic input. The first safe allocation
// found is returned; no attempt is made to find a best one.
//
// Example usage:
//
//	allocation, ok, err := services.NewAllocator().Allocate(events, venues)
//	if err != nil {
//	    // Malformed input
//	}
//	if !ok {
//	    // No safe allocation exists
//	}
type Allocator struct{}

// NewAllocator creates a new Allocator.
func NewAllocator() Allocator {
	return Allocator{}
}

// Allocate finds a safe allocation of every event in events to a distinct venue in venues.
//
// Parameters:
//   - events: The events to place (each constructed, no duplicates)
//   - venues: The candidate venues (no nil entries, no two with the same name)
//
// Returns:
//   - Allocation: The allocation found; empty when events is empty
//   - bool: false when no safe allocation exists, which is not an error
//   - error: An invalid argument error for malformed input
//
// Neither input slice is modified.
func (a Allocator) Allocate(events []event.Event, venues []Venue) (Allocation, bool, error) {
	if err := validateEvents(events); err != nil {
		return Allocation{}, false, err
	}
	if err := validateVenues(venues); err != nil {
		return Allocation{}, false, err
	}

	s := search{
		events: events,
		venues: venues,
		chosen: make([]int, len(events)),
	}

	found, err := s.place(0, make([]bool, len(venues)), network.NewTraffic())
	if err != nil || !found {
		return Allocation{}, false, err
	}

	allocation := Allocation{venues: make(map[event.Event]Venue, len(events))}
	for i, e := range events {
		allocation.venues[e] = venues[s.chosen[i]]
	}
	return allocation, true, nil
}

type search struct {
	events []event.Event
	venues []Venue
	// chosen[i] is the index of the venue picked for events[i] on the current path.
	chosen []int
}

// place assigns events[depth:] given the venues already used on this branch and the
// traffic accumulated so far. Loads only ever grow along a branch, so an unsafe
// ledger is pruned at once.
func (s *search) place(depth int, used []bool, accumulated *network.Traffic) (bool, error) {
	if depth == len(s.events) {
		return true, nil
	}

	e := s.events[depth]
	for i, v := range s.venues {
		if used[i] || !v.CanHost(e) {
			continue
		}

		contribution := v.TrafficFor(e)
		if contribution == nil {
			return false, errs.NewValueIsInvalidErrorWithCause("venues",
				fmt.Errorf("venue %q returned no traffic for %s", v.Name(), e))
		}

		next := accumulated.Copy()
		if err := next.AddTraffic(contribution); err != nil {
			return false, err
		}
		if !next.IsSafe() {
			continue
		}

		branch := slices.Clone(used)
		branch[i] = true
		s.chosen[depth] = i

		found, err := s.place(depth+1, branch, next)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

func validateEvents(events []event.Event) error {
	seen := make(map[event.Event]struct{}, len(events))
	for i, e := range events {
		if err := e.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("events",
				fmt.Errorf("event at index %d: %w", i, err))
		}
		if _, ok := seen[e]; ok {
			return errs.NewValueIsInvalidErrorWithCause("events",
				fmt.Errorf("duplicate event %s at index %d", e, i))
		}
		seen[e] = struct{}{}
	}
	return nil
}

func validateVenues(venues []Venue) error {
	seen := make(map[string]struct{}, len(venues))
	for i, v := range venues {
		if v == nil {
			return errs.NewValueIsRequiredErrorWithCause("venues",
				fmt.Errorf("venue at index %d is nil", i))
		}
		if validator, ok := v.(interface{ Validate() error }); ok {
			if err := validator.Validate(); err != nil {
				return errs.NewValueIsRequiredErrorWithCause("venues",
					fmt.Errorf("venue at index %d: %w", i, err))
			}
		}
		if _, ok := seen[v.Name()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("venues",
				fmt.Errorf("duplicate venue %q at index %d", v.Name(), i))
		}
		seen[v.Name()] = struct{}{}
	}
	return nil
}
