package commands

import (
	"errors"

	"planner/internal/core/domain/model/event"
	"planner/internal/pkg/guard"
)

var ErrReleaseEventCommandIsNotConstructed = errors.New(
	"ReleaseEventCommand must be created via NewReleaseEventCommand constructor",
)

// ReleaseEventCommand takes an event off the planning board, freeing its venue.
type ReleaseEventCommand struct {
	event event.Event
	guard guard.ConstructorGuard
}

// NewReleaseEventCommand creates a command releasing the event (name, size).
func NewReleaseEventCommand(name string, size int) (ReleaseEventCommand, error) {
	e, err := event.NewEvent(name, size)
	if err != nil {
		return ReleaseEventCommand{}, err
	}

	return ReleaseEventCommand{
		event: e,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Event returns the event to release.
func (c ReleaseEventCommand) Event() event.Event {
	return c.event
}

// Validate ensures the command was created through the constructor.
func (c ReleaseEventCommand) Validate() error {
	return c.guard.Validate(ErrReleaseEventCommandIsNotConstructed)
}
