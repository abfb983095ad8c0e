package queries

import (
	"context"

	"planner/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllEventsQueryHandler reads the event registry straight from the database.
type GetAllEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllEventsQueryHandler creates a handler for registry queries.
func NewGetAllEventsQueryHandler(db *gorm.DB) GetAllEventsQueryHandler {
	return GetAllEventsQueryHandler{db: db}
}

// Handle returns the registered events, oldest first.
func (h GetAllEventsQueryHandler) Handle(
	ctx context.Context,
	query GetAllEventsQuery,
) ([]GetAllEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetAllEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, size
		FROM events
		ORDER BY created_at, name, size
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e GetAllEventsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &e.Name, &e.Size); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		e.ID = eventID
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
