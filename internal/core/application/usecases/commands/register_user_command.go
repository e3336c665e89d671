package commands

import (
	"errors"
	"strings"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a login together with the host or cleaner profile
// matching its role. Admins get no profile.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(kernel.NewUUID(), "host@example.com", "secret1", "host", "Hana", "")
//	if err != nil {
//	    return err
//	}
//	user, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	role     identity.Role
	name     string
	phone    string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	email string,
	password string,
	role string,
	name string,
	phone string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() identity.Role {
	return c.role
}

// Name defaults to the local part of the email when empty.
func (c RegisterUserCommand) Name() string {
	if c.name != "" {
		return c.name
	}
	local, _, _ := strings.Cut(c.email, "@")
	return local
}

func (c RegisterUserCommand) Phone() string {
	return c.phone
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = identity.NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "unbounded")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role string) error {
	r, err := identity.ParseRole(role)
	if err != nil {
		return err
	}
	c.role = r
	return nil
}
