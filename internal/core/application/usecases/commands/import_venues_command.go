package commands

import (
	"errors"

	"planner/internal/pkg/guard"
)

var ErrImportVenuesCommandIsNotConstructed = errors.New(
	"ImportVenuesCommand must be created via NewImportVenuesCommand constructor",
)

// ImportVenuesCommand replaces the venue catalogue with the one described by the
// configured venue source. The planning board is cleared, since its assignments
// refer to the previous catalogue.
//
// Example:
//
//	cmd := NewImportVenuesCommand()
//	handler := NewImportVenuesCommandHandler(uowFactory, reader, boards)
//	imported, err := handler.Handle(ctx, cmd)
type ImportVenuesCommand struct {
	guard guard.ConstructorGuard
}

// NewImportVenuesCommand creates a new command to reload the venue catalogue.
func NewImportVenuesCommand() ImportVenuesCommand {
	return ImportVenuesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ImportVenuesCommand) Validate() error {
	return c.guard.Validate(ErrImportVenuesCommandIsNotConstructed)
}
