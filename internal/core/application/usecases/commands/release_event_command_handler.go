package commands

import (
	"context"

	"planner/internal/core/domain/model/plan"
	"planner/internal/core/ports"
)

// ReleaseEventCommandHandler removes assignments from the planning board.
type ReleaseEventCommandHandler struct {
	boards ports.BoardRepository
}

// NewReleaseEventCommandHandler creates a handler for releasing assignments.
func NewReleaseEventCommandHandler(boards ports.BoardRepository) ReleaseEventCommandHandler {
	return ReleaseEventCommandHandler{boards: boards}
}

// Handle releases the event. Returns plan.ErrEventNotAllocated if it has no venue.
func (h ReleaseEventCommandHandler) Handle(ctx context.Context, command ReleaseEventCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.boards.Update(ctx, func(board *plan.Board) error {
		_, err := board.Release(command.Event())
		return err
	})
}
