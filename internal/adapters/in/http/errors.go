package http

import (
	"errors"
	"net/http"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

var (
	forbiddenErrs = []error{commands.ErrForbidden}

	notFoundErrs = []error{
		commands.ErrJobNotFound,
		commands.ErrChecklistItemNotFound,
		queries.ErrJobNotFound,
		queries.ErrPropertyNotFound,
		errs.ErrObjectNotFound,
	}

	badRequestErrs = []error{
		commands.ErrInvalidProperty,
		commands.ErrNotClaimable,
		commands.ErrNotStartable,
		commands.ErrNotCompletable,
		commands.ErrChecklistIncomplete,
		commands.ErrNotCompleted,
		commands.ErrNoCleaner,
		commands.ErrAlreadyRated,
		commands.ErrEmailTaken,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
	}

	unauthorizedErrs = []error{commands.ErrInvalidCredentials, ErrMissingToken}

	conflictErrs = []error{commands.ErrConcurrentModification, errs.ErrVersionIsInvalid}
)

func statusOf(err error) int {
	switch {
	case isAny(err, forbiddenErrs):
		return http.StatusForbidden
	case isAny(err, unauthorizedErrs):
		return http.StatusUnauthorized
	case isAny(err, notFoundErrs):
		return http.StatusNotFound
	case isAny(err, conflictErrs):
		return http.StatusConflict
	case isAny(err, badRequestErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail writes err with its mapped status. Unexpected errors are logged and hidden from the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return writeError(ctx, code, http.StatusText(code))
	}
	return writeError(ctx, code, err.Error())
}
