// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var (
	ErrGetAllVenuesQueryIsNotConstructed = errors.New(
		"GetAllVenuesQuery must be created via NewGetAllVenuesQuery constructor",
	)
)

// GetAllVenuesQuery retrieves the venue catalogue with the traffic of every venue.
//
// Example:
//
//	query := NewGetAllVenuesQuery()
//	handler := NewGetAllVenuesQueryHandler(db)
//
//	venues, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve venues: %w", err)
//	}
//
//	for _, v := range venues {
//	    fmt.Printf("%s holds %d people\n", v.Name, v.Capacity)
//	}
type GetAllVenuesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVenuesQuery creates a query to retrieve the whole catalogue.
func NewGetAllVenuesQuery() GetAllVenuesQuery {
	return GetAllVenuesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVenuesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVenuesQueryIsNotConstructed)
}

// GetAllVenuesQueryResponse is the read model of a catalogue venue.
// Traffic lists the corridor loads the venue generates in corridor order.
type GetAllVenuesQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Capacity int
	Traffic  []CorridorLoadResponse
}
