// Package memory keeps the planning board of the running service in process memory.
package memory

import (
	"context"
	"sync"

	"planner/internal/core/domain/model/plan"
)

// BoardRepository implements ports.BoardRepository with a mutex-guarded board.
type BoardRepository struct {
	mu    sync.Mutex
	board *plan.Board
}

// NewBoardRepository returns a repository holding an empty board.
func NewBoardRepository() *BoardRepository {
	return &BoardRepository{board: plan.NewBoard()}
}

// Get returns a snapshot of the board.
func (r *BoardRepository) Get(ctx context.Context) (*plan.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.board.Clone(), nil
}

// Update applies fn to a working copy and stores it only if fn succeeds.
// Concurrent updates are serialized.
func (r *BoardRepository) Update(ctx context.Context, fn func(board *plan.Board) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.board.Clone()
	if err := fn(working); err != nil {
		return err
	}

	r.board = working
	return nil
}
