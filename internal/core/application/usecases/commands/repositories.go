// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"planner/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest one it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VenueRepoFactory provides access to the venue catalogue within a transaction.
	VenueRepoFactory interface {
		VenueRepository() ports.VenueRepository
	}

	// EventRepoFactory provides access to the event registry within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// VenueUoW manages transactions for catalogue-only operations.
	VenueUoW interface {
		TxManager
		VenueRepoFactory
	}

	// VenueUoWFactory creates new venue unit of work instances.
	VenueUoWFactory interface {
		Create() VenueUoW
	}

	// EventUoW manages transactions for registry-only operations.
	EventUoW interface {
		TxManager
		EventRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}

	// UoW manages transactions that read both the catalogue and the registry.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   venues, err := uow.VenueRepository().GetAll(ctx)
	//   events, err := uow.EventRepository().GetAll(ctx)
	UoW interface {
		TxManager
		VenueRepoFactory
		EventRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
