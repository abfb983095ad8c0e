package kernel

import (
	"cmp"

	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using NewLocation to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a named point of the municipality at either end of a traffic corridor.
// Location is an immutable value object identified by its name alone; two locations
// with the same name are the same place. The zero value is invalid and fails validation.
//
// Location is comparable, so it can be used directly as a map key or compared with ==.
//
// Example:
//
//	city, err := kernel.NewLocation("City")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("%s", city) // Output: City
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the given name.
// The name must not be empty.
//
// Parameters:
//   - name: The name of the location
//
// Returns:
//   - Location: A valid location instance
//   - error: ValueIsRequiredError if the name is empty
//
// Example:
//
//	annerley, err := NewLocation("Annerley")
//	if err != nil {
//	    log.Fatal("Invalid location:", err)
//	}
func NewLocation(name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setName(name); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using NewLocation.
// The zero value of Location is invalid and will fail this validation.
//
// Returns:
//   - error: ErrLocationIsNotConstructed if the location was not properly initialized, nil otherwise
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Name returns the name of the location.
func (l Location) Name() string {
	return l.name
}

// String returns the location name.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return l.name
}

// IsEqual reports whether two locations have the same name.
//
// Example:
//
//	a1, _ := NewLocation("Ascot")
//	a2, _ := NewLocation("Ascot")
//	a1.IsEqual(a2) // true
func (l Location) IsEqual(other Location) bool {
	return l.name == other.name
}

// Compare orders locations lexicographically by name.
// It returns a negative number when l sorts before other, zero when the names are
// equal and a positive number otherwise, so it can be passed to slices.SortFunc.
//
// Example:
//
//	bardon, _ := NewLocation("Bardon")
//	city, _ := NewLocation("City")
//	bardon.Compare(city) // < 0
func (l Location) Compare(other Location) int {
	return cmp.Compare(l.name, other.name)
}

// CheckInvariant reports whether the location satisfies its invariant:
// constructed through NewLocation with a non-empty name.
// Intended for tests; a constructed Location always returns true.
func (l Location) CheckInvariant() bool {
	return l.Validate() == nil && l.name != ""
}

// setName sets the name with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers,
// so construction can validate through the same setter that assigns the field.
func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	l.name = name
	return nil
}
