package venuerepo

import (
	"context"
	"errors"
	"fmt"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/venue"
	"planner/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVenueRepository implements ports.VenueRepository using GORM.
type GormVenueRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVenueRepository creates a new GORM venue repository.
func NewGormVenueRepository(db *gorm.DB, tracker aggregateTracker) *GormVenueRepository {
	return &GormVenueRepository{
		db:      db,
		tracker: tracker,
	}
}

// ReplaceAll deletes the current catalogue and stores venues in their order.
// Run it inside a unit of work so readers never see an empty catalogue.
func (r *GormVenueRepository) ReplaceAll(ctx context.Context, venues []*venue.Venue) error {
	seen := make(map[string]struct{}, len(venues))
	dtos := make([]VenueDTO, 0, len(venues))
	for i, v := range venues {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, dup := seen[v.Name()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("venues",
				fmt.Errorf("duplicate venue name %q", v.Name()))
		}
		seen[v.Name()] = struct{}{}
		dtos = append(dtos, fromDomain(v, i))
	}

	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&VenueTrafficDTO{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&VenueDTO{}).Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}
	if err := db.Create(&dtos).Error; err != nil {
		return err
	}

	for i, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return err
		}
		r.tracker.TrackAggregate(id, venues[i])
	}
	return nil
}

// Get retrieves a venue by name.
func (r *GormVenueRepository) Get(ctx context.Context, name string) (*venue.Venue, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto VenueDTO
	if err := r.db.WithContext(ctx).Preload("Traffic").First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("venue", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every venue in catalogue order.
func (r *GormVenueRepository) GetAll(ctx context.Context) ([]*venue.Venue, error) {
	var dtos []VenueDTO
	if err := r.db.WithContext(ctx).Preload("Traffic").Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	venues := make([]*venue.Venue, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}

	return venues, nil
}
