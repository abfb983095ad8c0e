package network

import (
	"cmp"
	"errors"
	"fmt"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var (
	// ErrCorridorIsNotConstructed is returned when a Corridor was not created via NewCorridor.
	ErrCorridorIsNotConstructed = errs.NewValueIsRequiredError(
		"corridor must be created via NewCorridor constructor")

	// ErrCorridorIsLoop is returned when a corridor would start and end at the same location.
	ErrCorridorIsLoop = errs.NewValueIsInvalidErrorWithCause(
		"end", errors.New("start and end locations must be distinct"))
)

// Corridor is a directed traffic corridor from a start location to a different end
// location, with a maximum capacity measured in people using it at the same time.
//
// Corridor is an immutable value object. Equality covers all three attributes, so two
// corridors between the same locations but with different capacities are distinct.
// Corridors are comparable and are used directly as keys of a Traffic ledger.
//
// Example:
//
//	annerley, _ := kernel.NewLocation("Annerley")
//	city, _ := kernel.NewLocation("City")
//	c, err := network.NewCorridor(annerley, city, 20)
//	fmt.Println(c) // Output: Corridor Annerley to City (20)
type Corridor struct { //nolint:recvcheck //using for validation
	start    kernel.Location
	end      kernel.Location
	capacity int
	guard    guard.ConstructorGuard
}

// NewCorridor creates a corridor from start to end with the given capacity.
//
// Parameters:
//   - start: The location the corridor starts at (must be constructed)
//   - end: The location the corridor ends at (must be constructed and differ from start)
//   - capacity: The maximum number of people on the corridor at once (must be > 0)
//
// Returns:
//   - Corridor: A valid corridor
//   - error: All violated rules joined together; every one of them is an invalid argument error
func NewCorridor(start kernel.Location, end kernel.Location, capacity int) (Corridor, error) {
	corridor := Corridor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		corridor.setStart(start),
		corridor.setEnd(end),
		corridor.setCapacity(capacity),
	); err != nil {
		return Corridor{}, err
	}

	if corridor.start.IsEqual(corridor.end) {
		return Corridor{}, ErrCorridorIsLoop
	}

	return corridor, nil
}

// Validate checks if the Corridor was properly constructed using NewCorridor.
func (c Corridor) Validate() error {
	return c.guard.Validate(ErrCorridorIsNotConstructed)
}

// Start returns the location the corridor starts at.
func (c Corridor) Start() kernel.Location {
	return c.start
}

// End returns the location the corridor ends at.
func (c Corridor) End() kernel.Location {
	return c.end
}

// Capacity returns the maximum number of people the corridor carries at once.
func (c Corridor) Capacity() int {
	return c.capacity
}

// String returns "Corridor START to END (CAPACITY)".
func (c Corridor) String() string {
	return fmt.Sprintf("Corridor %s to %s (%d)", c.start, c.end, c.capacity)
}

// IsEqual reports whether both corridors have the same start, end and capacity.
func (c Corridor) IsEqual(other Corridor) bool {
	return c.start.IsEqual(other.start) && c.end.IsEqual(other.end) && c.capacity == other.capacity
}

// Compare orders corridors by start location, then end location, then capacity.
// For example, in ascending order:
//
//	Corridor Annerley to City (20)
//	Corridor Annerley to City (30)
//	Corridor Bardon to Ascot (40)
//	Corridor Bardon to City (10)
//	Corridor City to Bardon (10)
func (c Corridor) Compare(other Corridor) int {
	if r := c.start.Compare(other.start); r != 0 {
		return r
	}
	if r := c.end.Compare(other.end); r != 0 {
		return r
	}
	return cmp.Compare(c.capacity, other.capacity)
}

// CheckInvariant reports whether the corridor satisfies its invariant. Intended for tests.
func (c Corridor) CheckInvariant() bool {
	return c.Validate() == nil &&
		c.start.CheckInvariant() &&
		c.end.CheckInvariant() &&
		!c.start.IsEqual(c.end) &&
		c.capacity > 0
}

func (c *Corridor) setStart(start kernel.Location) error {
	if err := start.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("start", err)
	}

	c.start = start
	return nil
}

func (c *Corridor) setEnd(end kernel.Location) error {
	if err := end.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("end", err)
	}

	c.end = end
	return nil
}

func (c *Corridor) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, "unbounded")
	}

	c.capacity = capacity
	return nil
}
