package queries_test

import (
	"testing"

	"planner/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_Validate(t *testing.T) {
	tests := []struct {
		name      string
		validate  func() error
		wantError error
	}{
		{name: "venues", validate: queries.NewGetAllVenuesQuery().Validate},
		{name: "events", validate: queries.NewGetAllEventsQuery().Validate},
		{name: "board", validate: queries.NewGetBoardQuery().Validate},
		{
			name:      "zero venues query",
			validate:  queries.GetAllVenuesQuery{}.Validate,
			wantError: queries.ErrGetAllVenuesQueryIsNotConstructed,
		},
		{
			name:      "zero events query",
			validate:  queries.GetAllEventsQuery{}.Validate,
			wantError: queries.ErrGetAllEventsQueryIsNotConstructed,
		},
		{
			name:      "zero board query",
			validate:  queries.GetBoardQuery{}.Validate,
			wantError: queries.ErrGetBoardQueryIsNotConstructed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()

			if tt.wantError == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantError)
		})
	}
}
