package ports

import (
	"context"

	"planner/internal/core/domain/model/event"
)

// EventRepository defines the persistence contract for the event registry.
type EventRepository interface {
	// Add registers a new event. The (name, size) pair must not be registered yet.
	Add(ctx context.Context, e event.Event) error

	// Exists reports whether the event is registered.
	Exists(ctx context.Context, e event.Event) (bool, error)

	// GetAll retrieves every registered event in registration order.
	GetAll(ctx context.Context) ([]event.Event, error)
}
