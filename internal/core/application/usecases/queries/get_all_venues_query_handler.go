package queries

import (
	"context"
	"database/sql"

	"planner/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVenuesQueryHandler reads the venue catalogue straight from the database.
type GetAllVenuesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVenuesQueryHandler creates a handler for catalogue queries.
func NewGetAllVenuesQueryHandler(db *gorm.DB) GetAllVenuesQueryHandler {
	return GetAllVenuesQueryHandler{db: db}
}

// Handle returns the venues in catalogue order.
func (h GetAllVenuesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVenuesQuery,
) ([]GetAllVenuesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	venues := make([]GetAllVenuesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.name,
			v.capacity,
			t.start_location,
			t.end_location,
			t.corridor_capacity,
			t.load
		FROM venues v
		LEFT JOIN venue_traffic t ON t.venue_id = v.id
		ORDER BY v.position, t.start_location, t.end_location, t.corridor_capacity
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id               uuid.UUID
			name             string
			capacity         int
			start, end       sql.NullString
			corridorCapacity sql.NullInt64
			load             sql.NullInt64
		)

		if err = rows.Scan(&id, &name, &capacity, &start, &end, &corridorCapacity, &load); err != nil {
			return nil, err
		}

		if len(venues) == 0 || venues[len(venues)-1].Name != name {
			venueID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return nil, idErr
			}
			venues = append(venues, GetAllVenuesQueryResponse{
				ID:       venueID,
				Name:     name,
				Capacity: capacity,
				Traffic:  make([]CorridorLoadResponse, 0),
			})
		}

		if start.Valid {
			current := &venues[len(venues)-1]
			current.Traffic = append(current.Traffic, CorridorLoadResponse{
				Start:    start.String,
				End:      end.String,
				Capacity: int(corridorCapacity.Int64),
				Load:     int(load.Int64),
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return venues, nil
}
