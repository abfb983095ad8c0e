package ports

import (
	"context"

	"planner/internal/core/domain/model/plan"
)

// BoardRepository holds the single planning board of the running service.
type BoardRepository interface {
	// Get returns a snapshot of the board. Changing it does not affect the stored board.
	Get(ctx context.Context) (*plan.Board, error)

	// Update runs fn against the stored board with exclusive access. If fn returns
	// an error the board is left as it was before the call.
	Update(ctx context.Context, fn func(board *plan.Board) error) error
}
