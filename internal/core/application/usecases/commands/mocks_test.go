package commands_test

import (
	"context"
	"testing"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/network"
	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/model/venue"
	"planner/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVenueRepository struct{ mock.Mock }

func (m *MockVenueRepository) ReplaceAll(ctx context.Context, venues []*venue.Venue) error {
	args := m.Called(ctx, venues)
	return args.Error(0)
}

func (m *MockVenueRepository) Get(ctx context.Context, name string) (*venue.Venue, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetAll(ctx context.Context) ([]*venue.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Venue), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Exists(ctx context.Context, e event.Event) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepository) GetAll(ctx context.Context) ([]event.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VenueRepository() ports.VenueRepository {
	args := m.Called()
	return args.Get(0).(ports.VenueRepository)
}

func (m *MockUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockVenueUoWFactory struct{ mock.Mock }

func (m *MockVenueUoWFactory) Create() commands.VenueUoW {
	args := m.Called()
	return args.Get(0).(commands.VenueUoW)
}

type MockEventUoWFactory struct{ mock.Mock }

func (m *MockEventUoWFactory) Create() commands.EventUoW {
	args := m.Called()
	return args.Get(0).(commands.EventUoW)
}

type MockVenueReader struct{ mock.Mock }

func (m *MockVenueReader) Read(ctx context.Context) ([]*venue.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venue.Venue), args.Error(1)
}

// boardStore keeps a board in memory the way the service does.
type boardStore struct {
	board *plan.Board
}

func newBoardStore() *boardStore {
	return &boardStore{board: plan.NewBoard()}
}

func (s *boardStore) Get(context.Context) (*plan.Board, error) {
	return s.board.Clone(), nil
}

func (s *boardStore) Update(_ context.Context, fn func(board *plan.Board) error) error {
	next := s.board.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.board = next
	return nil
}

func newEvent(t *testing.T, name string, size int) event.Event {
	t.Helper()
	e, err := event.NewEvent(name, size)
	require.NoError(t, err)
	return e
}

func newCorridor(t *testing.T, capacity int) network.Corridor {
	t.Helper()
	a, err := kernel.NewLocation("A")
	require.NoError(t, err)
	b, err := kernel.NewLocation("B")
	require.NoError(t, err)
	c, err := network.NewCorridor(a, b, capacity)
	require.NoError(t, err)
	return c
}

func newVenue(t *testing.T, name string, capacity int, corridor network.Corridor, load int) *venue.Venue {
	t.Helper()
	traffic := network.NewTraffic()
	require.NoError(t, traffic.UpdateTraffic(corridor, load))
	v, err := venue.NewVenue(name, capacity, traffic)
	require.NoError(t, err)
	return v
}
