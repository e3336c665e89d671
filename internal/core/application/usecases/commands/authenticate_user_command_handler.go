package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/ports"
	"cleaning/internal/pkg/errs"
)

// AuthenticateUserCommandHandler resolves credentials to a principal.
// Unknown emails and wrong passwords are indistinguishable to the caller.
type AuthenticateUserCommandHandler struct {
	uowFactory UoWFactory
	hasher     ports.PasswordHasher
}

func NewAuthenticateUserCommandHandler(uowFactory UoWFactory, hasher ports.PasswordHasher) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h AuthenticateUserCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateUserCommand,
) (identity.Principal, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Principal{}, err
	}

	uow := h.uowFactory.Create()

	user, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return identity.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return identity.Principal{}, err
	}

	if err = h.hasher.Compare(user.PasswordHash(), cmd.Password()); err != nil {
		return identity.Principal{}, ErrInvalidCredentials
	}

	return user.Principal(), nil
}
