package queries

import (
	"errors"

	"planner/internal/pkg/guard"
)

var ErrGetBoardQueryIsNotConstructed = errors.New(
	"GetBoardQuery must be created via NewGetBoardQuery constructor",
)

// GetBoardQuery retrieves the planning board: its assignments and the corridor loads
// they produce.
type GetBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoardQuery creates a board query.
func NewGetBoardQuery() GetBoardQuery {
	return GetBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardQueryIsNotConstructed)
}

// BoardAssignmentResponse is one event placed in one venue.
type BoardAssignmentResponse struct {
	EventName     string
	EventSize     int
	VenueName     string
	VenueCapacity int
}

// GetBoardQueryResponse is the read model of the planning board.
// Assignments are in event order and Corridors in corridor order.
type GetBoardQueryResponse struct {
	Assignments []BoardAssignmentResponse
	Corridors   []CorridorLoadResponse
	Safe        bool
}
