package http

import (
	"net/http"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register - creates a user with its profile and logs it in.
func (s *Server) Register(ctx echo.Context) error {
	var body Registration
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), body.Email, body.Password, body.Role, body.Name, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	user, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithToken(ctx, http.StatusCreated, user.Principal())
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var body Credentials
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAuthenticateUserCommand(body.Email, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	principal, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithToken(ctx, http.StatusOK, principal)
}

func (s *Server) respondWithToken(ctx echo.Context, code int, p identity.Principal) error {
	token, err := s.tokens.Issue(p)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, Token{Token: token})
}
