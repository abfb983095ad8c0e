package commands

import (
	"context"
	"slices"

	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/model/venue"
	"planner/internal/core/ports"
)

// ImportVenuesCommandHandler loads venues from a VenueReader and stores them as the
// new catalogue in a single transaction.
//
// Example:
//
//	handler := NewImportVenuesCommandHandler(uowFactory, venuefile.NewReader(path), boards)
//	imported, err := handler.Handle(ctx, NewImportVenuesCommand())
//	if err != nil {
//	    log.Printf("Import failed: %v", err)
//	}
type ImportVenuesCommandHandler struct {
	uowFactory VenueUoWFactory
	reader     ports.VenueReader
	boards     ports.BoardRepository
}

// NewImportVenuesCommandHandler creates a handler for catalogue imports.
func NewImportVenuesCommandHandler(
	uowFactory VenueUoWFactory,
	reader ports.VenueReader,
	boards ports.BoardRepository,
) ImportVenuesCommandHandler {
	return ImportVenuesCommandHandler{
		uowFactory: uowFactory,
		reader:     reader,
		boards:     boards,
	}
}

// Handle reads the venues and, when they differ from the stored catalogue, replaces
// the catalogue and clears the planning board. It returns the number of venues read.
// A read failure leaves the catalogue as it was, and an unchanged catalogue keeps the
// board.
func (h ImportVenuesCommandHandler) Handle(ctx context.Context, command ImportVenuesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	venues, err := h.reader.Read(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VenueRepository()

	current, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if sameCatalogue(current, venues) {
		return len(venues), nil
	}

	if err = repo.ReplaceAll(ctx, venues); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if err = h.boards.Update(ctx, func(board *plan.Board) error {
		board.Reset()
		return nil
	}); err != nil {
		return 0, err
	}

	return len(venues), nil
}

// sameCatalogue reports whether both catalogues list the same venues in the same order.
func sameCatalogue(current, next []*venue.Venue) bool {
	return slices.EqualFunc(current, next, (*venue.Venue).SameDescription)
}
