package http

import (
	"planner/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CorridorLoad struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Capacity int    `json:"capacity"`
	Load     int    `json:"load"`
}

type Venue struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Capacity int            `json:"capacity"`
	Traffic  []CorridorLoad `json:"traffic"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

type Event struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Size int       `json:"size"`
}

type NewEvent struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type NewAssignment struct {
	EventName string `json:"eventName"`
	EventSize int    `json:"eventSize"`
	VenueName string `json:"venueName"`
}

type Assignment struct {
	EventName     string `json:"eventName"`
	EventSize     int    `json:"eventSize"`
	VenueName     string `json:"venueName"`
	VenueCapacity int    `json:"venueCapacity"`
}

type Board struct {
	Assignments []Assignment   `json:"assignments"`
	Corridors   []CorridorLoad `json:"corridors"`
	Safe        bool           `json:"safe"`
}

func toCorridorLoads(loads []queries.CorridorLoadResponse) []CorridorLoad {
	result := make([]CorridorLoad, len(loads))
	for i, l := range loads {
		result[i] = CorridorLoad{
			Start:    l.Start,
			End:      l.End,
			Capacity: l.Capacity,
			Load:     l.Load,
		}
	}
	return result
}

func toBoard(board queries.GetBoardQueryResponse) Board {
	assignments := make([]Assignment, len(board.Assignments))
	for i, a := range board.Assignments {
		assignments[i] = Assignment{
			EventName:     a.EventName,
			EventSize:     a.EventSize,
			VenueName:     a.VenueName,
			VenueCapacity: a.VenueCapacity,
		}
	}

	return Board{
		Assignments: assignments,
		Corridors:   toCorridorLoads(board.Corridors),
		Safe:        board.Safe,
	}
}
