package commands

import (
	"errors"

	"planner/internal/core/domain/model/event"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrAssignEventCommandIsNotConstructed = errors.New(
	"AssignEventCommand must be created via NewAssignEventCommand constructor",
)

// AssignEventCommand places a registered event in a catalogue venue on the planning board.
type AssignEventCommand struct {
	event     event.Event
	venueName string
	guard     guard.ConstructorGuard
}

// NewAssignEventCommand creates a command assigning the event (eventName, eventSize)
// to the venue called venueName.
func NewAssignEventCommand(eventName string, eventSize int, venueName string) (AssignEventCommand, error) {
	e, err := event.NewEvent(eventName, eventSize)
	if venueName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("venue"))
	}
	if err != nil {
		return AssignEventCommand{}, err
	}

	return AssignEventCommand{
		event:     e,
		venueName: venueName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Event returns the event to place.
func (c AssignEventCommand) Event() event.Event {
	return c.event
}

// VenueName returns the name of the venue to use.
func (c AssignEventCommand) VenueName() string {
	return c.venueName
}

// Validate ensures the command was created through the constructor.
func (c AssignEventCommand) Validate() error {
	return c.guard.Validate(ErrAssignEventCommandIsNotConstructed)
}
