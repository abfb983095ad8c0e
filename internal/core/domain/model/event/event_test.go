package event_test

import (
	"slices"
	"testing"

	"planner/internal/core/domain/model/event"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		size      int
		wantErrs  []error
	}{
		{
			name:      "valid event",
			eventName: "Concert",
			size:      100,
		},
		{
			name:      "size of one",
			eventName: "Meeting",
			size:      1,
		},
		{
			name:      "empty name",
			eventName: "",
			size:      100,
			wantErrs:  []error{errs.ErrValueIsRequired},
		},
		{
			name:      "zero size",
			eventName: "Concert",
			size:      0,
			wantErrs:  []error{errs.ErrValueIsOutOfRange},
		},
		{
			name:      "negative size",
			eventName: "Concert",
			size:      -3,
			wantErrs:  []error{errs.ErrValueIsOutOfRange},
		},
		{
			name:      "empty name and zero size",
			eventName: "",
			size:      0,
			wantErrs:  []error{errs.ErrValueIsRequired, errs.ErrValueIsOutOfRange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := event.NewEvent(tt.eventName, tt.size)

			if len(tt.wantErrs) > 0 {
				require.Error(t, err)
				assert.Zero(t, e)
				assert.True(t, errs.IsInvalidArgument(err))
				for _, want := range tt.wantErrs {
					assert.ErrorIs(t, err, want)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.eventName, e.Name())
			assert.Equal(t, tt.size, e.Size())
			assert.True(t, e.CheckInvariant())
		})
	}
}

func TestEvent_Validate(t *testing.T) {
	var e event.Event

	assert.Equal(t, event.ErrEventIsNotConstructed, e.Validate())
	assert.False(t, e.CheckInvariant())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "Concert (100)", mustNewEvent(t, "Concert", 100).String())
}

func TestEvent_IsEqual(t *testing.T) {
	concert := mustNewEvent(t, "Concert", 100)

	assert.True(t, concert.IsEqual(mustNewEvent(t, "Concert", 100)))
	assert.True(t, concert == mustNewEvent(t, "Concert", 100))
	assert.False(t, concert.IsEqual(mustNewEvent(t, "Concert", 120)))
	assert.False(t, concert.IsEqual(mustNewEvent(t, "Recital", 100)))
}

func TestEvent_Compare(t *testing.T) {
	events := []event.Event{
		mustNewEvent(t, "Recital", 10),
		mustNewEvent(t, "Concert", 120),
		mustNewEvent(t, "Concert", 100),
		mustNewEvent(t, "Banquet", 500),
	}

	slices.SortFunc(events, event.Event.Compare)

	got := make([]string, 0, len(events))
	for _, e := range events {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"Banquet (500)", "Concert (100)", "Concert (120)", "Recital (10)"}, got)
	assert.Zero(t, events[1].Compare(mustNewEvent(t, "Concert", 100)))
}

func mustNewEvent(t *testing.T, name string, size int) event.Event {
	t.Helper()
	e, err := event.NewEvent(name, size)
	require.NoError(t, err)
	return e
}
