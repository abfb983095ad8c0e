package postgres

import (
	"planner/internal/adapters/out/postgres/eventrepo"
	"planner/internal/adapters/out/postgres/venuerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalogue and registry tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venuerepo.VenueDTO{},
		&venuerepo.VenueTrafficDTO{},
		&eventrepo.EventDTO{},
	)
}
