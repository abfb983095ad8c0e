package commands

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/model/venue"
	"planner/internal/core/domain/services"
	"planner/internal/core/ports"
)

// ErrNoSafeAllocation is returned when the registered events cannot all be placed
// without overloading a corridor.
var ErrNoSafeAllocation = errors.New("no safe allocation exists")

// ErrCatalogueChanged is returned when the venue catalogue was replaced while an
// allocation was being searched.
var ErrCatalogueChanged = errors.New("venue catalogue changed during allocation")

// AutoAllocateCommandHandler runs the Allocator over the registry and the catalogue.
//
// Events are tried in registration order and venues in catalogue order, so the
// outcome is reproducible for the same data.
type AutoAllocateCommandHandler struct {
	uowFactory UoWFactory
	boards     ports.BoardRepository
	allocator  services.Allocator
}

// NewAutoAllocateCommandHandler creates a handler for automatic allocation.
func NewAutoAllocateCommandHandler(
	uowFactory UoWFactory,
	boards ports.BoardRepository,
	allocator services.Allocator,
) AutoAllocateCommandHandler {
	return AutoAllocateCommandHandler{
		uowFactory: uowFactory,
		boards:     boards,
		allocator:  allocator,
	}
}

// Handle replaces the planning board with the allocation found.
// Returns ErrNoSafeAllocation, leaving the board untouched, when there is none.
//
// The search runs outside any transaction. Before the board is replaced the catalogue
// is read again, and ErrCatalogueChanged is returned when an import replaced it in
// the meantime.
func (h AutoAllocateCommandHandler) Handle(ctx context.Context, command AutoAllocateCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	events, catalogue, err := h.load(ctx)
	if err != nil {
		return err
	}

	candidates := make([]services.Venue, 0, len(catalogue))
	byName := make(map[string]*venue.Venue, len(catalogue))
	for _, v := range catalogue {
		candidates = append(candidates, v)
		byName[v.Name()] = v
	}

	allocation, ok, err := h.allocator.Allocate(events, candidates)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSafeAllocation
	}

	assignments := make([]plan.Assignment, 0, allocation.Len())
	for e, v := range allocation.All() {
		assignments = append(assignments, plan.Assignment{Event: e, Venue: byName[v.Name()]})
	}

	return h.boards.Update(ctx, func(board *plan.Board) error {
		current, err := h.loadCatalogue(ctx)
		if err != nil {
			return err
		}
		if !sameCatalogue(current, catalogue) {
			return ErrCatalogueChanged
		}
		return board.Replace(assignments)
	})
}

func (h AutoAllocateCommandHandler) load(ctx context.Context) ([]event.Event, []*venue.Venue, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	// read-only, nothing to commit
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	events, err := uow.EventRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	catalogue, err := uow.VenueRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return events, catalogue, nil
}

func (h AutoAllocateCommandHandler) loadCatalogue(ctx context.Context) ([]*venue.Venue, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.VenueRepository().GetAll(ctx)
}
