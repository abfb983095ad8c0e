package queries

import (
	"context"

	"planner/internal/core/ports"
)

// GetBoardQueryHandler reads the planning board.
type GetBoardQueryHandler struct {
	boards ports.BoardRepository
}

// NewGetBoardQueryHandler creates a handler for board queries.
func NewGetBoardQueryHandler(boards ports.BoardRepository) GetBoardQueryHandler {
	return GetBoardQueryHandler{boards: boards}
}

// Handle returns a snapshot of the board.
func (h GetBoardQueryHandler) Handle(ctx context.Context, query GetBoardQuery) (GetBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardQueryResponse{}, err
	}

	board, err := h.boards.Get(ctx)
	if err != nil {
		return GetBoardQueryResponse{}, err
	}

	assignments := make([]BoardAssignmentResponse, 0, board.Len())
	for _, a := range board.Assignments() {
		assignments = append(assignments, BoardAssignmentResponse{
			EventName:     a.Event.Name(),
			EventSize:     a.Event.Size(),
			VenueName:     a.Venue.Name(),
			VenueCapacity: a.Venue.Capacity(),
		})
	}

	traffic := board.Traffic()
	return GetBoardQueryResponse{
		Assignments: assignments,
		Corridors:   corridorLoads(traffic),
		Safe:        traffic.IsSafe(),
	}, nil
}
