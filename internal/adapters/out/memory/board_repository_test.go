package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"planner/internal/adapters/out/memory"
	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/network"
	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/model/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func newVenue(t *testing.T, name string, corridor network.Corridor, load int) *venue.Venue {
	t.Helper()
	traffic := network.NewTraffic()
	require.NoError(t, traffic.UpdateTraffic(corridor, load))
	v, err := venue.NewVenue(name, 100, traffic)
	require.NoError(t, err)
	return v
}

func newEvent(t *testing.T, name string) event.Event {
	t.Helper()
	e, err := event.NewEvent(name, 10)
	require.NoError(t, err)
	return e
}

func TestBoardRepository_GetReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	ab := newCorridor(t, 100)
	repo := memory.NewBoardRepository()

	snapshot, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, snapshot.Assign(newEvent(t, "Concert"), newVenue(t, "Stadium", ab, 10)))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, stored.Len())
}

func TestBoardRepository_Update(t *testing.T) {
	ctx := context.Background()
	ab := newCorridor(t, 100)
	stadium := newVenue(t, "Stadium", ab, 60)
	arena := newVenue(t, "Arena", ab, 60)
	concert := newEvent(t, "Concert")
	festival := newEvent(t, "Festival")

	repo := memory.NewBoardRepository()

	t.Run("should store a successful change", func(t *testing.T) {
		err := repo.Update(ctx, func(b *plan.Board) error { return b.Assign(concert, stadium) })
		require.NoError(t, err)

		board, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, board.Len())
	})

	t.Run("should discard a failed change", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.Update(ctx, func(b *plan.Board) error {
			b.Reset()
			return boom
		})
		require.ErrorIs(t, err, boom)

		err = repo.Update(ctx, func(b *plan.Board) error { return b.Assign(festival, arena) })
		require.ErrorIs(t, err, plan.ErrUnsafeTraffic)

		board, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, board.Len())
		assert.True(t, board.CheckInvariant())
	})

	t.Run("should honour a cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := repo.Update(cancelled, func(*plan.Board) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
		_, err = repo.Get(cancelled)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestBoardRepository_ConcurrentUpdatesStaySafe(t *testing.T) {
	ctx := context.Background()
	ab := newCorridor(t, 100)
	repo := memory.NewBoardRepository()

	assignments := make([]plan.Assignment, 0, 20)
	for i := range 20 {
		assignments = append(assignments, plan.Assignment{
			Event: newEvent(t, fmt.Sprintf("Event %d", i)),
			Venue: newVenue(t, fmt.Sprintf("Venue %d", i), ab, 10),
		})
	}

	var wg sync.WaitGroup
	for _, a := range assignments {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Update(ctx, func(b *plan.Board) error { return b.Assign(a.Event, a.Venue) })
		}()
	}
	wg.Wait()

	board, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, board.Len(), "only ten loads of 10 fit a corridor of 100")
	assert.True(t, board.CheckInvariant())
}
