package commands

import (
	"context"

	"planner/internal/core/domain/model/plan"
	"planner/internal/core/ports"
	"planner/internal/pkg/errs"
)

// AssignEventCommandHandler puts one event on the planning board.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // Unknown event or venue
//	case errors.Is(err, plan.ErrUnsafeTraffic):
//	    // A corridor would be overloaded
//	}
type AssignEventCommandHandler struct {
	uowFactory UoWFactory
	boards     ports.BoardRepository
}

// NewAssignEventCommandHandler creates a handler for manual assignments.
func NewAssignEventCommandHandler(uowFactory UoWFactory, boards ports.BoardRepository) AssignEventCommandHandler {
	return AssignEventCommandHandler{
		uowFactory: uowFactory,
		boards:     boards,
	}
}

// Handle checks that the event is registered and the venue is catalogued, then
// assigns them on the board. Board rule violations are returned as the plan errors.
func (h AssignEventCommandHandler) Handle(ctx context.Context, command AssignEventCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	// read-only, nothing to commit
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.EventRepository().Exists(ctx, command.Event())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("event", command.Event().String())
	}

	v, err := uow.VenueRepository().Get(ctx, command.VenueName())
	if err != nil {
		return err
	}

	return h.boards.Update(ctx, func(board *plan.Board) error {
		return board.Assign(command.Event(), v)
	})
}
