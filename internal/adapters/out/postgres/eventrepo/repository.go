package eventrepo

import (
	"context"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEventRepository implements ports.EventRepository using GORM.
type GormEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB, tracker aggregateTracker) *GormEventRepository {
	return &GormEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add registers a new event.
func (r *GormEventRepository) Add(ctx context.Context, e event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return err
	}
	r.tracker.TrackAggregate(id, e)
	return nil
}

// Exists reports whether the (name, size) pair is registered.
func (r *GormEventRepository) Exists(ctx context.Context, e event.Event) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("name = ? AND size = ?", e.Name(), e.Size()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every registered event in registration order.
func (r *GormEventRepository) GetAll(ctx context.Context) ([]event.Event, error) {
	var dtos []EventDTO
	if err := r.db.WithContext(ctx).Order("created_at, name, size").Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]event.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
