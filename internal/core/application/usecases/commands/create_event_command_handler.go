package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrEventAlreadyExists is returned when the same (name, size) event is registered twice.
var ErrEventAlreadyExists = errors.New("event already exists")

// CreateEventCommandHandler registers events in the event registry.
type CreateEventCommandHandler struct {
	uowFactory EventUoWFactory
}

// NewCreateEventCommandHandler creates a handler for event registration.
func NewCreateEventCommandHandler(uowFactory EventUoWFactory) CreateEventCommandHandler {
	return CreateEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the event of the command.
// Returns ErrEventAlreadyExists if it is registered already.
func (h CreateEventCommandHandler) Handle(ctx context.Context, command CreateEventCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EventRepository()

	exists, err := repo.Exists(ctx, command.Event())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrEventAlreadyExists, command.Event())
	}

	if err = repo.Add(ctx, command.Event()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
