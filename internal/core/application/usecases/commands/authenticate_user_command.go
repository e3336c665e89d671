package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand checks an email/password pair.
type AuthenticateUserCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(email string, password string) (AuthenticateUserCommand, error) {
	email = identity.NormalizeEmail(email)

	var emailErr, passwordErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return AuthenticateUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Email() string {
	return c.email
}

func (c AuthenticateUserCommand) Password() string {
	return c.password
}
