package network

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"planner/internal/pkg/errs"
)

// LineSeparator terminates every line of Traffic.String.
const LineSeparator = "\n"

// ErrInvalidTraffic is returned when an update would leave a corridor with a
// negative amount of traffic. It signals a caller logic error.
var ErrInvalidTraffic = errors.New("invalid traffic")

// Traffic is a mutable ledger of the number of people currently on each corridor.
//
// Invariant: only corridors with a strictly positive load are stored. An update
// that brings a corridor back to zero removes it, so "absent" and "zero" are the
// same state and CorridorsWithTraffic, String and SameTraffic never see zero loads.
//
// The zero value is an empty ledger ready to use. A Traffic value is not safe for
// concurrent mutation. Two ledgers never share
// storage: Copy and AddTraffic copy entries rather than aliasing maps.
//
// Example:
//
//	t := network.NewTraffic()
//	_ = t.UpdateTraffic(annerleyToCity, 30)
//	t.IsSafe()     // true while 30 <= annerleyToCity.Capacity()
//	fmt.Print(t)   // Corridor Annerley to City (20): 30
type Traffic struct {
	loads map[Corridor]int
}

// NewTraffic returns an empty ledger: every corridor has zero traffic.
func NewTraffic() *Traffic {
	return &Traffic{loads: make(map[Corridor]int)}
}

// Copy returns a deep, independent snapshot of the ledger. A nil ledger copies as
// an empty one.
func (t *Traffic) Copy() *Traffic {
	if t == nil {
		return NewTraffic()
	}
	return &Traffic{loads: maps.Clone(t.loads)}
}

// Load returns the traffic on corridor, zero when it carries none.
// A corridor that was not built with NewCorridor is rejected.
func (t *Traffic) Load(corridor Corridor) (int, error) {
	if err := corridor.Validate(); err != nil {
		return 0, err
	}
	return t.loads[corridor], nil
}

// CorridorsWithTraffic returns the corridors with a positive load in corridor order.
// The slice is a fresh copy; changing it does not affect the ledger.
func (t *Traffic) CorridorsWithTraffic() []Corridor {
	corridors := slices.Collect(maps.Keys(t.loads))
	slices.SortFunc(corridors, Corridor.Compare)
	return corridors
}

// All iterates over (corridor, load) pairs with positive load in corridor order.
func (t *Traffic) All() iter.Seq2[Corridor, int] {
	return func(yield func(Corridor, int) bool) {
		for _, c := range t.CorridorsWithTraffic() {
			if !yield(c, t.loads[c]) {
				return
			}
		}
	}
}

// Len returns the number of corridors with a positive load.
func (t *Traffic) Len() int {
	return len(t.loads)
}

// UpdateTraffic adds delta, which may be negative, to the traffic on corridor.
//
// Returns ErrInvalidTraffic, leaving the ledger unchanged, if the result would be
// negative. A result of exactly zero removes the corridor from the ledger.
func (t *Traffic) UpdateTraffic(corridor Corridor, delta int) error {
	current, err := t.Load(corridor)
	if err != nil {
		return err
	}

	next := current + delta
	switch {
	case next < 0:
		return fmt.Errorf("%w: %d %+d on %s would be negative", ErrInvalidTraffic, current, delta, corridor)
	case next == 0:
		delete(t.loads, corridor)
	default:
		if t.loads == nil {
			t.loads = make(map[Corridor]int)
		}
		t.loads[corridor] = next
	}
	return nil
}

// AddTraffic adds every load recorded in other to this ledger. other is never
// modified. Entries are snapshotted first, so t.AddTraffic(t) doubles every load.
func (t *Traffic) AddTraffic(other *Traffic) error {
	if other == nil {
		return errs.NewValueIsRequiredError("traffic")
	}

	for corridor, load := range maps.Clone(other.loads) {
		if err := t.UpdateTraffic(corridor, load); err != nil {
			return err
		}
	}
	return nil
}

// IsSafe reports whether no corridor carries more than its capacity.
func (t *Traffic) IsSafe() bool {
	for corridor, load := range t.loads {
		if load > corridor.Capacity() {
			return false
		}
	}
	return true
}

// SameTraffic reports whether other records exactly the same load on every corridor.
func (t *Traffic) SameTraffic(other *Traffic) bool {
	if other == nil {
		return false
	}
	return maps.Equal(t.loads, other.loads)
}

// String renders one "CORRIDOR: LOAD" line per loaded corridor in corridor order,
// each terminated by LineSeparator. An empty ledger renders as "".
func (t *Traffic) String() string {
	var sb strings.Builder
	for corridor, load := range t.All() {
		fmt.Fprintf(&sb, "%s: %d%s", corridor, load, LineSeparator)
	}
	return sb.String()
}

// CheckInvariant reports whether every stored load is positive and every key is a
// constructed corridor. Intended for tests.
func (t *Traffic) CheckInvariant() bool {
	for corridor, load := range t.loads {
		if load <= 0 || !corridor.CheckInvariant() {
			return false
		}
	}
	return true
}
