package http

import (
	"errors"
	"net/http"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/plan"
	"planner/internal/core/ports"
	"planner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var conflictErrors = []error{
	commands.ErrEventAlreadyExists,
	commands.ErrNoSafeAllocation,
	commands.ErrCatalogueChanged,
	plan.ErrEventAlreadyAllocated,
	plan.ErrVenueAlreadyAllocated,
	plan.ErrVenueTooSmall,
	plan.ErrUnsafeTraffic,
	plan.ErrEventNotAllocated,
}

func statusOf(err error) int {
	switch {
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrVenueSourceInvalid):
		return http.StatusUnprocessableEntity
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// fail writes err as an ErrorResponse. Internal failures are logged and answered with
// internalMessage only.
func (s *Server) fail(ctx echo.Context, err error, internalMessage string) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), internalMessage,
			"error", err,
			"path", ctx.Path(),
		)
		message = internalMessage
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
