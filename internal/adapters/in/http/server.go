// Package http exposes the planner over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	importVenuesHandler interface {
		Handle(ctx context.Context, command commands.ImportVenuesCommand) (int, error)
	}
	createEventHandler interface {
		Handle(ctx context.Context, command commands.CreateEventCommand) error
	}
	assignEventHandler interface {
		Handle(ctx context.Context, command commands.AssignEventCommand) error
	}
	releaseEventHandler interface {
		Handle(ctx context.Context, command commands.ReleaseEventCommand) error
	}
	autoAllocateHandler interface {
		Handle(ctx context.Context, command commands.AutoAllocateCommand) error
	}
	getAllVenuesHandler interface {
		Handle(ctx context.Context, query queries.GetAllVenuesQuery) ([]queries.GetAllVenuesQueryResponse, error)
	}
	getAllEventsHandler interface {
		Handle(ctx context.Context, query queries.GetAllEventsQuery) ([]queries.GetAllEventsQueryResponse, error)
	}
	getBoardHandler interface {
		Handle(ctx context.Context, query queries.GetBoardQuery) (queries.GetBoardQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	ImportVenues importVenuesHandler
	CreateEvent  createEventHandler
	AssignEvent  assignEventHandler
	ReleaseEvent releaseEventHandler
	AutoAllocate autoAllocateHandler
	GetAllVenues getAllVenuesHandler
	GetAllEvents getAllEventsHandler
	GetBoard     getBoardHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the routes on e. When validator is not nil it guards the API group.
func (s *Server) Register(e *echo.Echo, validator echo.MiddlewareFunc) {
	e.Use(middleware.Recover(), s.requestLogger())

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	if validator != nil {
		api.Use(validator)
	}

	api.GET("/venues", s.GetVenues)
	api.POST("/venues/import", s.ImportVenues)
	api.GET("/events", s.GetEvents)
	api.POST("/events", s.CreateEvent)
	api.GET("/board", s.GetBoard)
	api.POST("/board/assignments", s.AssignEvent)
	api.DELETE("/board/assignments/:event/:size", s.ReleaseEvent)
	api.POST("/board/auto", s.AutoAllocate)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetVenues handles GET /api/v1/venues - lists the catalogue in allocation order.
func (s *Server) GetVenues(ctx echo.Context) error {
	venues, err := s.handlers.GetAllVenues.Handle(ctx.Request().Context(), queries.NewGetAllVenuesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve venues")
	}

	response := make([]Venue, len(venues))
	for i, v := range venues {
		response[i] = Venue{
			ID:       v.ID.Bytes(),
			Name:     v.Name,
			Capacity: v.Capacity,
			Traffic:  toCorridorLoads(v.Traffic),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ImportVenues handles POST /api/v1/venues/import - reloads the catalogue.
func (s *Server) ImportVenues(ctx echo.Context) error {
	imported, err := s.handlers.ImportVenues.Handle(ctx.Request().Context(), commands.NewImportVenuesCommand())
	if err != nil {
		return s.fail(ctx, err, "Failed to import venues")
	}

	return ctx.JSON(http.StatusOK, ImportResult{Imported: imported})
}

// GetEvents handles GET /api/v1/events - lists registered events.
func (s *Server) GetEvents(ctx echo.Context) error {
	events, err := s.handlers.GetAllEvents.Handle(ctx.Request().Context(), queries.NewGetAllEventsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve events")
	}

	response := make([]Event, len(events))
	for i, e := range events {
		response[i] = Event{
			ID:   e.ID.Bytes(),
			Name: e.Name,
			Size: e.Size,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEvent handles POST /api/v1/events - registers an event.
// Form submissions carry the size as text and are parsed like the add-event form.
func (s *Server) CreateEvent(ctx echo.Context) error {
	var (
		cmd commands.CreateEventCommand
		err error
	)

	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm) {
		cmd, err = commands.ParseCreateEventCommand(ctx.FormValue("name"), ctx.FormValue("size"))
	} else {
		var newEvent NewEvent
		if bindErr := ctx.Bind(&newEvent); bindErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid request body",
			})
		}
		cmd, err = commands.NewCreateEventCommand(newEvent.Name, newEvent.Size)
	}
	if err != nil {
		return s.fail(ctx, err, "Failed to create event")
	}

	if err = s.handlers.CreateEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create event")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBoard handles GET /api/v1/board - shows the planning board.
func (s *Server) GetBoard(ctx echo.Context) error {
	board, err := s.handlers.GetBoard.Handle(ctx.Request().Context(), queries.NewGetBoardQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve board")
	}

	return ctx.JSON(http.StatusOK, toBoard(board))
}

// AssignEvent handles POST /api/v1/board/assignments - places an event in a venue.
func (s *Server) AssignEvent(ctx echo.Context) error {
	var assignment NewAssignment
	if err := ctx.Bind(&assignment); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignEventCommand(assignment.EventName, assignment.EventSize, assignment.VenueName)
	if err != nil {
		return s.fail(ctx, err, "Failed to assign event")
	}

	if err = s.handlers.AssignEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to assign event")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReleaseEvent handles DELETE /api/v1/board/assignments/:event/:size.
func (s *Server) ReleaseEvent(ctx echo.Context) error {
	size, err := strconv.Atoi(ctx.Param("size"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid event size",
		})
	}

	cmd, err := commands.NewReleaseEventCommand(ctx.Param("event"), size)
	if err != nil {
		return s.fail(ctx, err, "Failed to release event")
	}

	if err = s.handlers.ReleaseEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to release event")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AutoAllocate handles POST /api/v1/board/auto - allocates every registered event.
func (s *Server) AutoAllocate(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if err := s.handlers.AutoAllocate.Handle(reqCtx, commands.NewAutoAllocateCommand()); err != nil {
		return s.fail(ctx, err, "Failed to allocate events")
	}

	board, err := s.handlers.GetBoard.Handle(reqCtx, queries.NewGetBoardQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve board")
	}

	return ctx.JSON(http.StatusOK, toBoard(board))
}

// requestLogger logs method, path, status and latency of every request.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.DebugContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"duration", v.Latency,
			)
			return nil
		},
	})
}
