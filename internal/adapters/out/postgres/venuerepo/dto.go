// Package venuerepo provides data transfer objects and mapping functions for the venue
// catalogue. It handles the conversion between venue entities and their tables.
package venuerepo

import (
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/network"
	"planner/internal/core/domain/model/venue"

	"github.com/google/uuid"
)

// VenueDTO represents the database structure of a catalogue venue.
// Position keeps the catalogue order, which the allocator relies on.
type VenueDTO struct {
	ID       uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name     string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	Capacity int               `gorm:"type:int;not null"`
	Position int               `gorm:"type:int;not null;index"`
	Traffic  []VenueTrafficDTO `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "venues".
func (VenueDTO) TableName() string {
	return "venues"
}

// VenueTrafficDTO represents one corridor load a venue generates.
// The corridor is stored inline: corridors have no identity beyond their attributes.
type VenueTrafficDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	VenueID          uuid.UUID `gorm:"type:uuid;not null;index"`
	StartLocation    string    `gorm:"type:varchar(255);not null"`
	EndLocation      string    `gorm:"type:varchar(255);not null"`
	CorridorCapacity int       `gorm:"type:int;not null"`
	Load             int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "venue_traffic".
func (VenueTrafficDTO) TableName() string {
	return "venue_traffic"
}

// fromDomain converts a venue to its database representation with fresh row ids.
func fromDomain(v *venue.Venue, position int) VenueDTO {
	venueID := kernel.NewUUID().Bytes()
	traffic := v.Traffic()
	rows := make([]VenueTrafficDTO, 0, traffic.Len())

	for corridor, load := range traffic.All() {
		rows = append(rows, VenueTrafficDTO{
			ID:               kernel.NewUUID().Bytes(),
			VenueID:          venueID,
			StartLocation:    corridor.Start().Name(),
			EndLocation:      corridor.End().Name(),
			CorridorCapacity: corridor.Capacity(),
			Load:             load,
		})
	}

	return VenueDTO{
		ID:       venueID,
		Name:     v.Name(),
		Capacity: v.Capacity(),
		Position: position,
		Traffic:  rows,
	}
}

// toDomain rebuilds a venue and its traffic from the database representation.
func toDomain(dto VenueDTO) (*venue.Venue, error) {
	traffic := network.NewTraffic()
	for _, row := range dto.Traffic {
		corridor, err := corridorToDomain(row)
		if err != nil {
			return nil, err
		}
		if err = traffic.UpdateTraffic(corridor, row.Load); err != nil {
			return nil, err
		}
	}

	return venue.NewVenue(dto.Name, dto.Capacity, traffic)
}

func corridorToDomain(row VenueTrafficDTO) (network.Corridor, error) {
	start, err := kernel.NewLocation(row.StartLocation)
	if err != nil {
		return network.Corridor{}, err
	}

	end, err := kernel.NewLocation(row.EndLocation)
	if err != nil {
		return network.Corridor{}, err
	}

	return network.NewCorridor(start, end, row.CorridorCapacity)
}
