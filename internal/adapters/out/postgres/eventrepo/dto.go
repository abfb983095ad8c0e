// Package eventrepo provides data transfer objects and mapping functions for the
// event registry.
package eventrepo

import (
	"time"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure of a registered event.
// CreatedAt keeps the registration order.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_events_name_size"`
	Size      int       `gorm:"type:int;not null;uniqueIndex:idx_events_name_size"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention to use "events".
func (EventDTO) TableName() string {
	return "events"
}

func fromDomain(e event.Event) EventDTO {
	return EventDTO{
		ID:   kernel.NewUUID().Bytes(),
		Name: e.Name(),
		Size: e.Size(),
	}
}

func toDomain(dto EventDTO) (event.Event, error) {
	return event.NewEvent(dto.Name, dto.Size)
}
