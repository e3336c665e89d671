package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/ports"
	"cleaning/internal/pkg/errs"
)

// RegisterUserCommandHandler stores the user and its profile in one transaction.
type RegisterUserCommandHandler struct {
	uowFactory UoWFactory
	hasher     ports.PasswordHasher
	clock      kernel.Clock
}

func NewRegisterUserCommandHandler(
	uowFactory UoWFactory,
	hasher ports.PasswordHasher,
	clock kernel.Clock,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

// Handle returns ErrEmailTaken when the email is already registered.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(cmd.UserID(), cmd.Email(), hash, cmd.Role(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err = uow.UserRepository().Add(ctx, user)
	if errors.Is(err, errs.ErrObjectExists) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	switch cmd.Role() {
	case identity.RoleHost:
		host, hostErr := identity.NewHost(kernel.NewUUID(), user.ID(), cmd.Name(), cmd.Phone())
		if hostErr != nil {
			return nil, hostErr
		}
		if err = uow.HostRepository().Add(ctx, host); err != nil {
			return nil, err
		}
	case identity.RoleCleaner:
		cleaner, cleanerErr := identity.NewCleaner(kernel.NewUUID(), user.ID(), cmd.Name(), cmd.Phone())
		if cleanerErr != nil {
			return nil, cleanerErr
		}
		if err = uow.CleanerRepository().Add(ctx, cleaner); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
