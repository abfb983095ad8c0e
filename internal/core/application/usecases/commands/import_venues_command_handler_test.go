package commands_test

import (
	"errors"
	"testing"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportVenuesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ab := newCorridor(t, 100)
	stadium := newVenue(t, "Stadium", 60, ab, 60)
	venues := []*venue.Venue{stadium, newVenue(t, "Hall", 20, ab, 10)}

	reader := new(MockVenueReader)
	repo := new(MockVenueRepository)
	uow := new(MockUoW)
	factory := new(MockVenueUoWFactory)
	boards := newBoardStore()
	require.NoError(t, boards.board.Assign(newEvent(t, "Concert", 50), stadium))

	reader.On("Read", ctx).Return(venues, nil).Once()
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VenueRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*venue.Venue{stadium}, nil).Once(),
		repo.On("ReplaceAll", ctx, venues).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewImportVenuesCommandHandler(factory, reader, boards)
	imported, err := handler.Handle(ctx, commands.NewImportVenuesCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Zero(t, boards.board.Len(), "board is cleared")
	reader.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestImportVenuesCommandHandler_Handle_ReadError(t *testing.T) {
	ctx := t.Context()
	readErr := errors.New("bad file")

	reader := new(MockVenueReader)
	factory := new(MockVenueUoWFactory)
	reader.On("Read", ctx).Return(nil, readErr).Once()

	handler := commands.NewImportVenuesCommandHandler(factory, reader, newBoardStore())
	_, err := handler.Handle(ctx, commands.NewImportVenuesCommand())

	require.ErrorIs(t, err, readErr)
	factory.AssertNotCalled(t, "Create")
}

func TestImportVenuesCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	dbErr := errors.New("db down")
	venues := []*venue.Venue{newVenue(t, "Hall", 20, newCorridor(t, 100), 10)}

	reader := new(MockVenueReader)
	repo := new(MockVenueRepository)
	uow := new(MockUoW)
	factory := new(MockVenueUoWFactory)

	reader.On("Read", ctx).Return(venues, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VenueRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return([]*venue.Venue{}, nil).Once()
	repo.On("ReplaceAll", ctx, venues).Return(dbErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewImportVenuesCommandHandler(factory, reader, newBoardStore())
	_, err := handler.Handle(ctx, commands.NewImportVenuesCommand())

	require.ErrorIs(t, err, dbErr)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestImportVenuesCommandHandler_Handle_UnchangedCatalogueKeepsBoard(t *testing.T) {
	ctx := t.Context()
	ab := newCorridor(t, 100)
	stored := []*venue.Venue{newVenue(t, "Stadium", 60, ab, 60), newVenue(t, "Hall", 20, ab, 10)}
	reread := []*venue.Venue{newVenue(t, "Stadium", 60, ab, 60), newVenue(t, "Hall", 20, ab, 10)}

	reader := new(MockVenueReader)
	repo := new(MockVenueRepository)
	uow := new(MockUoW)
	factory := new(MockVenueUoWFactory)
	boards := newBoardStore()
	concert := newEvent(t, "Concert", 50)
	require.NoError(t, boards.board.Assign(concert, stored[0]))

	reader.On("Read", ctx).Return(reread, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VenueRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewImportVenuesCommandHandler(factory, reader, boards)
	imported, err := handler.Handle(ctx, commands.NewImportVenuesCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, 1, boards.board.Len(), "board keeps its assignments")
	_, ok := boards.board.VenueOf(concert)
	assert.True(t, ok)
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestImportVenuesCommandHandler_Handle_ReorderedCatalogueIsAChange(t *testing.T) {
	ctx := t.Context()
	ab := newCorridor(t, 100)
	stadium := newVenue(t, "Stadium", 60, ab, 60)
	hall := newVenue(t, "Hall", 20, ab, 10)
	venues := []*venue.Venue{hall, stadium}

	reader := new(MockVenueReader)
	repo := new(MockVenueRepository)
	uow := new(MockUoW)
	factory := new(MockVenueUoWFactory)
	boards := newBoardStore()
	require.NoError(t, boards.board.Assign(newEvent(t, "Concert", 50), stadium))

	reader.On("Read", ctx).Return(venues, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VenueRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return([]*venue.Venue{stadium, hall}, nil).Once()
	repo.On("ReplaceAll", ctx, venues).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewImportVenuesCommandHandler(factory, reader, boards)
	_, err := handler.Handle(ctx, commands.NewImportVenuesCommand())

	require.NoError(t, err)
	assert.Zero(t, boards.board.Len(), "catalogue order drives allocation, so a new order clears the board")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestImportVenuesCommandHandler_Handle_LoadCurrentError(t *testing.T) {
	ctx := t.Context()
	dbErr := errors.New("db down")
	venues := []*venue.Venue{newVenue(t, "Hall", 20, newCorridor(t, 100), 10)}

	reader := new(MockVenueReader)
	repo := new(MockVenueRepository)
	uow := new(MockUoW)
	factory := new(MockVenueUoWFactory)

	reader.On("Read", ctx).Return(venues, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VenueRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return(nil, dbErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewImportVenuesCommandHandler(factory, reader, newBoardStore())
	_, err := handler.Handle(ctx, commands.NewImportVenuesCommand())

	require.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestImportVenuesCommandHandler_Handle_InvalidCommand(t *testing.T) {
	handler := commands.NewImportVenuesCommandHandler(new(MockVenueUoWFactory), new(MockVenueReader), newBoardStore())

	_, err := handler.Handle(t.Context(), commands.ImportVenuesCommand{})

	require.ErrorIs(t, err, commands.ErrImportVenuesCommandIsNotConstructed)
}
