package queries

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var ErrGetAllEventsQueryIsNotConstructed = errors.New(
	"GetAllEventsQuery must be created via NewGetAllEventsQuery constructor",
)

// GetAllEventsQuery retrieves the registered events in registration order.
type GetAllEventsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllEventsQuery creates a query to retrieve every registered event.
func NewGetAllEventsQuery() GetAllEventsQuery {
	return GetAllEventsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllEventsQueryIsNotConstructed)
}

// GetAllEventsQueryResponse is the read model of a registered event.
type GetAllEventsQueryResponse struct {
	ID   kernel.UUID
	Name string
	Size int
}
