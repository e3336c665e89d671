package identity

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is the login identity. Its role never changes after creation.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewUser creates a user; email is normalised to lower case.
func NewUser(id kernel.UUID, email string, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	return RestoreUser(id, email, passwordHash, role, createdAt)
}

func RestoreUser(id kernel.UUID, email string, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
		user.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Principal returns the caller identity carried by an authenticated request.
func (u *User) Principal() Principal {
	return Principal{userID: u.id, role: u.role}
}

// NormalizeEmail trims and lower-cases an address before lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}

	u.email = normalized
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	u.createdAt = at
	return nil
}
