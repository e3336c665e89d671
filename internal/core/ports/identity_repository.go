// Package ports defines the contracts between the cleaning marketplace core and
// its infrastructure: repositories, the unit of work, and the outbound
// collaborators (media store, booking source, notifier, reminder scheduler,
// password hasher).
package ports

import (
	"context"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
)

// UserRepository stores login identities. Emails are unique.
type UserRepository interface {
	// Add persists a new user. Returns errs.ErrObjectExists when the email is taken.
	Add(ctx context.Context, user *identity.User) error

	// Get returns errs.ErrObjectNotFound when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetByEmail looks the user up by normalized email.
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
}

// HostRepository stores host profiles, one per host user.
type HostRepository interface {
	Add(ctx context.Context, host *identity.Host) error
	GetByUserID(ctx context.Context, userID kernel.UUID) (*identity.Host, error)
}

// CleanerRepository stores cleaner profiles and their rating aggregate.
type CleanerRepository interface {
	Add(ctx context.Context, cleaner *identity.Cleaner) error
	Update(ctx context.Context, cleaner *identity.Cleaner) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Cleaner, error)
	GetByUserID(ctx context.Context, userID kernel.UUID) (*identity.Cleaner, error)

	// GetForUpdate loads the cleaner and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.Cleaner, error)
}
