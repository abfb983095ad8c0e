package plan

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/network"
	"planner/internal/core/domain/model/venue"
)

// Domain errors for board operations.
var (
	// ErrEventAlreadyAllocated is returned when assigning an event that already has a venue.
	ErrEventAlreadyAllocated = errors.New("event is already allocated")
	// ErrVenueAlreadyAllocated is returned when assigning to a venue that already hosts an event.
	ErrVenueAlreadyAllocated = errors.New("venue is already allocated")
	// ErrVenueTooSmall is returned when the venue cannot hold the event.
	ErrVenueTooSmall = errors.New("venue is too small for event")
	// ErrUnsafeTraffic is returned when an assignment would overload a corridor.
	ErrUnsafeTraffic = errors.New("assignment would make corridor traffic unsafe")
	// ErrEventNotAllocated is returned when releasing an event that has no venue.
	ErrEventNotAllocated = errors.New("event is not allocated")
)

// Assignment is one event placed in one venue.
type Assignment struct {
	Event event.Event
	Venue *venue.Venue
}

// Board is the planning board: the assignments made so far and the corridor traffic
// they produce together.
//
// Board is an aggregate that keeps these invariants after every operation:
//   - No event is assigned twice and no venue hosts two events
//   - Every venue is large enough for its event
//   - The running corridor ledger equals the sum of the traffic of all assignments
//     and is always safe
//
// Operations either succeed completely or leave the board untouched. The zero value
// is an empty board ready to use.
type Board struct {
	assignments map[event.Event]*venue.Venue
	traffic     *network.Traffic
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		assignments: make(map[event.Event]*venue.Venue),
		traffic:     network.NewTraffic(),
	}
}

// Assign places e in v.
//
// Returns ErrEventAlreadyAllocated, ErrVenueAlreadyAllocated, ErrVenueTooSmall or
// ErrUnsafeTraffic, each wrapped with the names involved, when the assignment would
// break an invariant of the board.
func (b *Board) Assign(e event.Event, v *venue.Venue) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	if current, ok := b.assignments[e]; ok {
		return fmt.Errorf("%w: %s is held by %s", ErrEventAlreadyAllocated, e, current)
	}
	if holder, ok := b.holderOf(v.Name()); ok {
		return fmt.Errorf("%w: %s hosts %s", ErrVenueAlreadyAllocated, v, holder)
	}
	if !v.CanHost(e) {
		return fmt.Errorf("%w: %s cannot hold %s", ErrVenueTooSmall, v, e)
	}

	next := b.traffic.Copy()
	if err := next.AddTraffic(v.TrafficFor(e)); err != nil {
		return err
	}
	if !next.IsSafe() {
		return fmt.Errorf("%w: %s at %s", ErrUnsafeTraffic, e, v)
	}

	if b.assignments == nil {
		b.assignments = make(map[event.Event]*venue.Venue)
	}
	b.assignments[e] = v
	b.traffic = next
	return nil
}

// Release removes the assignment of e and subtracts its traffic from the running ledger.
// It returns the venue that hosted e.
func (b *Board) Release(e event.Event) (*venue.Venue, error) {
	v, ok := b.assignments[e]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEventNotAllocated, e)
	}

	next := b.traffic.Copy()
	for corridor, load := range v.TrafficFor(e).All() {
		if err := next.UpdateTraffic(corridor, -load); err != nil {
			return nil, err
		}
	}

	delete(b.assignments, e)
	b.traffic = next
	return v, nil
}

// Replace swaps the whole content of the board for assignments. If any of them
// cannot be placed the board keeps its previous content.
func (b *Board) Replace(assignments []Assignment) error {
	fresh := NewBoard()
	for _, a := range assignments {
		if err := fresh.Assign(a.Event, a.Venue); err != nil {
			return err
		}
	}

	b.assignments = fresh.assignments
	b.traffic = fresh.traffic
	return nil
}

// Clone returns an independent copy of the board. Venues are shared, they are never
// mutated by the board.
func (b *Board) Clone() *Board {
	return &Board{
		assignments: maps.Clone(b.assignments),
		traffic:     b.traffic.Copy(),
	}
}

// Reset removes every assignment.
func (b *Board) Reset() {
	b.assignments = make(map[event.Event]*venue.Venue)
	b.traffic = network.NewTraffic()
}

// VenueOf returns the venue hosting e.
func (b *Board) VenueOf(e event.Event) (*venue.Venue, bool) {
	v, ok := b.assignments[e]
	return v, ok
}

// Assignments returns the assignments in event order.
func (b *Board) Assignments() []Assignment {
	events := slices.SortedFunc(maps.Keys(b.assignments), event.Event.Compare)

	result := make([]Assignment, 0, len(events))
	for _, e := range events {
		result = append(result, Assignment{Event: e, Venue: b.assignments[e]})
	}
	return result
}

// Len returns the number of assignments.
func (b *Board) Len() int {
	return len(b.assignments)
}

// Traffic returns a copy of the running corridor ledger.
func (b *Board) Traffic() *network.Traffic {
	return b.traffic.Copy()
}

// CheckInvariant reports whether the board satisfies its invariants. Intended for tests.
func (b *Board) CheckInvariant() bool {
	expected := network.NewTraffic()
	hosts := make(map[string]struct{}, len(b.assignments))
	for e, v := range b.assignments {
		if _, dup := hosts[v.Name()]; dup || !v.CanHost(e) {
			return false
		}
		hosts[v.Name()] = struct{}{}
		if err := expected.AddTraffic(v.TrafficFor(e)); err != nil {
			return false
		}
	}
	ledger := b.traffic.Copy()
	return ledger.CheckInvariant() && ledger.IsSafe() && expected.SameTraffic(ledger)
}

func (b *Board) holderOf(venueName string) (event.Event, bool) {
	for e, v := range b.assignments {
		if v.Name() == venueName {
			return e, true
		}
	}
	return event.Event{}, false
}
