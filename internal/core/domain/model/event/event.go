package event

import (
	"cmp"
	"errors"
	"fmt"

	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event was not created through NewEvent.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError(
	"event must be created via NewEvent constructor")

// Event is something that needs a venue: a name and the number of people attending.
//
// Event follows these invariants:
//   - Name is never empty
//   - Size is strictly positive
//   - Can only be created through NewEvent
//
// Event is an immutable value object. Equality covers the (name, size) pair, so two
// events with the same name but different sizes are distinct. Events are comparable
// and can be used directly as map keys.
type Event struct { //nolint:recvcheck //using for validation
	name  string
	size  int
	guard guard.ConstructorGuard
}

// NewEvent creates an Event with validation.
//
// Parameters:
//   - name: The event name (must not be empty)
//   - size: The number of attendees (must be > 0)
//
// Returns:
//   - Event: The created event if all validations pass
//   - error: Every violated rule joined together
//
// Example:
//
//	concert, err := event.NewEvent("Concert", 100)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(concert) // Output: Concert (100)
func NewEvent(name string, size int) (Event, error) {
	e := Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setName(name),
		e.setSize(size),
	); err != nil {
		return Event{}, err
	}

	return e, nil
}

// Validate ensures the Event was properly constructed through NewEvent.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Name returns the event name.
func (e Event) Name() string {
	return e.name
}

// Size returns the number of attendees.
func (e Event) Size() int {
	return e.size
}

// String returns "NAME (SIZE)".
func (e Event) String() string {
	return fmt.Sprintf("%s (%d)", e.name, e.size)
}

// IsEqual reports whether both events have the same name and size.
func (e Event) IsEqual(other Event) bool {
	return e.name == other.name && e.size == other.size
}

// Compare orders events by name, ties broken by size.
func (e Event) Compare(other Event) int {
	if r := cmp.Compare(e.name, other.name); r != 0 {
		return r
	}
	return cmp.Compare(e.size, other.size)
}

// CheckInvariant reports whether the event satisfies its invariant. Intended for tests.
func (e Event) CheckInvariant() bool {
	return e.Validate() == nil && e.name != "" && e.size > 0
}

func (e *Event) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	e.name = name
	return nil
}

func (e *Event) setSize(size int) error {
	if size <= 0 {
		return errs.NewValueIsOutOfRangeError("size", size, 1, "unbounded")
	}

	e.size = size
	return nil
}
