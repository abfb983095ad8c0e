package commands

import (
	"errors"
	"strconv"
	"strings"

	"planner/internal/core/domain/model/event"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrCreateEventCommandIsNotConstructed = errors.New(
	"CreateEventCommand must be created via NewCreateEventCommand constructor",
)

// CreateEventCommand registers a new event.
//
// Example:
//
//	cmd, err := NewCreateEventCommand("Concert", 100)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateEventCommand struct {
	event event.Event
	guard guard.ConstructorGuard
}

// NewCreateEventCommand creates a command for the event (name, size).
// The arguments are validated the same way event.NewEvent does.
func NewCreateEventCommand(name string, size int) (CreateEventCommand, error) {
	e, err := event.NewEvent(name, size)
	if err != nil {
		return CreateEventCommand{}, err
	}

	return CreateEventCommand{
		event: e,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseCreateEventCommand creates a command from user-entered text, as typed into a form.
//
// Returns:
//   - errs.ErrValueIsRequired if name or size is empty or only whitespace
//   - errs.ErrValueIsInvalid if size is not an integer
//   - errs.ErrValueIsOutOfRange if size is not positive
func ParseCreateEventCommand(name string, size string) (CreateEventCommand, error) {
	size = strings.TrimSpace(size)

	var parseErr error
	if strings.TrimSpace(name) == "" {
		parseErr = errors.Join(parseErr, errs.NewValueIsRequiredError("name"))
	}
	if size == "" {
		parseErr = errors.Join(parseErr, errs.NewValueIsRequiredError("size"))
	}
	if parseErr != nil {
		return CreateEventCommand{}, parseErr
	}

	n, err := strconv.Atoi(size)
	if err != nil {
		return CreateEventCommand{}, errs.NewValueIsInvalidErrorWithCause("size", err)
	}

	return NewCreateEventCommand(name, n)
}

// Event returns the event to register.
func (c CreateEventCommand) Event() event.Event {
	return c.event
}

// Validate ensures the command was created through the constructor.
func (c CreateEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateEventCommandIsNotConstructed)
}
