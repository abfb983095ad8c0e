package services_test

import (
	"testing"

	"planner/internal/core/domain/model/event"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/network"
	"planner/internal/core/domain/model/venue"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCorridor(t *testing.T, start, end string, capacity int) network.Corridor {
	t.Helper()
	s, err := kernel.NewLocation(start)
	require.NoError(t, err)
	e, err := kernel.NewLocation(end)
	require.NoError(t, err)
	c, err := network.NewCorridor(s, e, capacity)
	require.NoError(t, err)
	return c
}

func createEvent(t *testing.T, name string, size int) event.Event {
	t.Helper()
	e, err := event.NewEvent(name, size)
	require.NoError(t, err)
	return e
}

func createVenue(t *testing.T, name string, capacity int, corridor network.Corridor, load int) *venue.Venue {
	t.Helper()
	traffic := network.NewTraffic()
	require.NoError(t, traffic.UpdateTraffic(corridor, load))
	v, err := venue.NewVenue(name, capacity, traffic)
	require.NoError(t, err)
	return v
}

// brokenVenue hands out no traffic at all.
type brokenVenue struct{}

func (brokenVenue) Name() string { return "Broken" }
func (brokenVenue) Capacity() int { return 1000 }
func (brokenVenue) CanHost(event.Event) bool { return true }
func (brokenVenue) TrafficFor(event.Event) *network.Traffic { return nil }

func assertValidAllocation(t *testing.T, allocation services.Allocation, events []event.Event) {
	t.Helper()
	require.Equal(t, len(events), allocation.Len())

	usedVenues := make(map[string]struct{})
	for _, e := range events {
		v, ok := allocation.Venue(e)
		require.True(t, ok, "event %s must be allocated", e)
		assert.True(t, v.CanHost(e))
		_, reused := usedVenues[v.Name()]
		assert.False(t, reused, "venue %s is used twice", v.Name())
		usedVenues[v.Name()] = struct{}{}
	}
	assert.True(t, allocation.IsSafe())
}

func TestAllocator_Allocate(t *testing.T) {
	allocator := services.NewAllocator()

	t.Run("should report no solution when shared corridor overflows", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 100)
		v1 := createVenue(t, "V1", 60, ab, 60)
		v2 := createVenue(t, "V2", 60, ab, 60)
		events := []event.Event{createEvent(t, "E1", 50), createEvent(t, "E2", 50)}

		allocation, ok, err := allocator.Allocate(events, []services.Venue{v1, v2})

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, allocation.Len())
	})

	t.Run("should allocate when shared corridor fits both venues", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 120)
		v1 := createVenue(t, "V1", 60, ab, 60)
		v2 := createVenue(t, "V2", 60, ab, 60)
		e1 := createEvent(t, "E1", 50)
		e2 := createEvent(t, "E2", 50)
		events := []event.Event{e1, e2}

		allocation, ok, err := allocator.Allocate(events, []services.Venue{v1, v2})

		require.NoError(t, err)
		require.True(t, ok)
		assertValidAllocation(t, allocation, events)

		got1, _ := allocation.Venue(e1)
		got2, _ := allocation.Venue(e2)
		assert.Equal(t, "V1", got1.Name(), "venues are tried in input order")
		assert.Equal(t, "V2", got2.Name())

		total, err := allocation.Traffic()
		require.NoError(t, err)
		load, err := total.Load(ab)
		require.NoError(t, err)
		assert.Equal(t, 120, load)
	})

	t.Run("should backtrack when an early choice blocks a later event", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 100)
		busy := createVenue(t, "Busy", 50, ab, 60)
		quiet := createVenue(t, "Quiet", 50, ab, 10)
		arena := createVenue(t, "Arena", 100, ab, 50)
		small := createEvent(t, "Small", 10)
		large := createEvent(t, "Large", 80)
		events := []event.Event{small, large}

		allocation, ok, err := allocator.Allocate(events, []services.Venue{busy, quiet, arena})

		require.NoError(t, err)
		require.True(t, ok)
		assertValidAllocation(t, allocation, events)

		gotSmall, _ := allocation.Venue(small)
		gotLarge, _ := allocation.Venue(large)
		assert.Equal(t, "Quiet", gotSmall.Name())
		assert.Equal(t, "Arena", gotLarge.Name())
	})

	t.Run("should skip venues that are too small", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 1000)
		tiny := createVenue(t, "Tiny", 10, ab, 1)
		hall := createVenue(t, "Hall", 200, ab, 1)
		concert := createEvent(t, "Concert", 150)

		allocation, ok, err := allocator.Allocate([]event.Event{concert}, []services.Venue{tiny, hall})

		require.NoError(t, err)
		require.True(t, ok)
		got, _ := allocation.Venue(concert)
		assert.Equal(t, "Hall", got.Name())
	})

	t.Run("should report no solution when more events than venues", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 1000)
		hall := createVenue(t, "Hall", 200, ab, 1)
		events := []event.Event{createEvent(t, "E1", 1), createEvent(t, "E2", 1)}

		_, ok, err := allocator.Allocate(events, []services.Venue{hall})

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should return empty allocation for no events", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 10)
		hall := createVenue(t, "Hall", 200, ab, 50)

		for _, events := range [][]event.Event{nil, {}} {
			allocation, ok, err := allocator.Allocate(events, []services.Venue{hall})

			require.NoError(t, err)
			assert.True(t, ok)
			assert.Zero(t, allocation.Len())
			assert.True(t, allocation.IsSafe())
			assert.Empty(t, allocation.String())
		}
	})

	t.Run("should report no solution for events without venues", func(t *testing.T) {
		_, ok, err := allocator.Allocate([]event.Event{createEvent(t, "E1", 1)}, nil)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should not modify inputs", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 120)
		v1 := createVenue(t, "V1", 60, ab, 60)
		v2 := createVenue(t, "V2", 60, ab, 60)
		events := []event.Event{createEvent(t, "E2", 50), createEvent(t, "E1", 50)}
		venues := []services.Venue{v2, v1}

		_, ok, err := allocator.Allocate(events, venues)

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "E2", events[0].Name())
		assert.Equal(t, "V2", venues[0].Name())
		assert.Equal(t, "V1", venues[1].Name())
		assert.True(t, v1.TrafficFor(events[0]).SameTraffic(v1.Traffic()))
	})
}

func TestAllocator_Allocate_InvalidInput(t *testing.T) {
	ab := createCorridor(t, "A", "B", 100)
	hall := createVenue(t, "Hall", 100, ab, 10)
	otherHall := createVenue(t, "Hall", 50, ab, 10)
	concert := createEvent(t, "Concert", 50)
	var nilVenue *venue.Venue

	tests := []struct {
		name    string
		events  []event.Event
		venues  []services.Venue
		wantErr error
	}{
		{
			name:    "duplicate event",
			events:  []event.Event{concert, createEvent(t, "Concert", 50)},
			venues:  []services.Venue{hall},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "unconstructed event",
			events:  []event.Event{{}},
			venues:  []services.Venue{hall},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "duplicate venue name",
			events:  []event.Event{concert},
			venues:  []services.Venue{hall, otherHall},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "nil venue",
			events:  []event.Event{concert},
			venues:  []services.Venue{nil},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "nil venue pointer",
			events:  []event.Event{concert},
			venues:  []services.Venue{nilVenue},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "venue without traffic",
			events:  []event.Event{concert},
			venues:  []services.Venue{brokenVenue{}},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocation, ok, err := services.NewAllocator().Allocate(tt.events, tt.venues)

			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errs.IsInvalidArgument(err))
			assert.False(t, ok)
			assert.Zero(t, allocation.Len())
		})
	}
}

func TestAllocation_String(t *testing.T) {
	ab := createCorridor(t, "A", "B", 200)
	stadium := createVenue(t, "Stadium", 100, ab, 60)
	hall := createVenue(t, "Hall", 60, ab, 20)
	recital := createEvent(t, "Recital", 40)
	concert := createEvent(t, "Concert", 90)

	allocation, ok, err := services.NewAllocator().Allocate(
		[]event.Event{recital, concert}, []services.Venue{hall, stadium})

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []event.Event{concert, recital}, allocation.Events())
	assert.Equal(t, "Concert (90) -> Stadium (100)\nRecital (40) -> Hall (60)\n", allocation.String())
}

func TestAllocation_Traffic(t *testing.T) {
	t.Run("empty allocation has an empty ledger", func(t *testing.T) {
		total, err := services.Allocation{}.Traffic()

		require.NoError(t, err)
		assert.Zero(t, total.Len())
		assert.True(t, services.Allocation{}.IsSafe())
	})

	t.Run("merges the traffic of every pair", func(t *testing.T) {
		ab := createCorridor(t, "A", "B", 100)
		bc := createCorridor(t, "B", "C", 100)
		stadium := createVenue(t, "Stadium", 100, ab, 60)
		hall := createVenue(t, "Hall", 60, bc, 20)
		events := []event.Event{createEvent(t, "Concert", 90), createEvent(t, "Recital", 40)}

		allocation, ok, err := services.NewAllocator().Allocate(events, []services.Venue{stadium, hall})
		require.NoError(t, err)
		require.True(t, ok)

		total, err := allocation.Traffic()

		require.NoError(t, err)
		assert.Equal(t, []network.Corridor{ab, bc}, total.CorridorsWithTraffic())
		assert.True(t, total.CheckInvariant())
	})
}
