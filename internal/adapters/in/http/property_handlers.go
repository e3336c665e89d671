package http

import (
	"net/http"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateProperty handles POST /api/v1/properties.
func (s *Server) CreateProperty(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewProperty
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreatePropertyCommand(principal, kernel.NewUUID(), body.Name, body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.handlers.CreateProperty.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, propertyFromResponse(queries.PropertyResponseFromDomain(p)))
}

// ListMyProperties handles GET /api/v1/properties/mine?limit=&offset=.
func (s *Server) ListMyProperties(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return s.fail(ctx, err)
	}
	offset, err := queryInt(ctx, "offset")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListMyPropertiesQuery(principal, limit, offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	properties, err := s.handlers.ListMyProperties.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, propertiesFromResponse(properties))
}

// GetProperty handles GET /api/v1/properties/{propertyId}.
func (s *Server) GetProperty(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	propertyID, err := pathID(ctx, "propertyId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPropertyQuery(principal, propertyID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.handlers.GetProperty.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, propertyFromResponse(p))
}

// GetUpcomingBookings handles GET /api/v1/properties/{propertyId}/bookings.
func (s *Server) GetUpcomingBookings(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	propertyID, err := pathID(ctx, "propertyId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetUpcomingBookingsQuery(principal, propertyID)
	if err != nil {
		return s.fail(ctx, err)
	}

	windows, err := s.handlers.GetUpcomingBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bookingWindowsFromDomain(windows))
}
