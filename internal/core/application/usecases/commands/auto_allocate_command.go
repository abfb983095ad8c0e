package commands

import (
	"errors"

	"planner/internal/pkg/guard"
)

var ErrAutoAllocateCommandIsNotConstructed = errors.New(
	"AutoAllocateCommand must be created via NewAutoAllocateCommand constructor",
)

// AutoAllocateCommand searches for a safe allocation of every registered event to the
// venue catalogue and, when one exists, puts it on the planning board.
type AutoAllocateCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAllocateCommand creates a new automatic allocation command.
func NewAutoAllocateCommand() AutoAllocateCommand {
	return AutoAllocateCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AutoAllocateCommand) Validate() error {
	return c.guard.Validate(ErrAutoAllocateCommandIsNotConstructed)
}
