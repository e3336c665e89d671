package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var ErrCreatePropertyCommandIsNotConstructed = errors.New(
	"CreatePropertyCommand must be created via NewCreatePropertyCommand constructor",
)

// CreatePropertyCommand registers a property for the calling host.
type CreatePropertyCommand struct {
	principal  identity.Principal
	propertyID kernel.UUID
	name       string
	address    string

	guard guard.ConstructorGuard
}

func NewCreatePropertyCommand(
	principal identity.Principal,
	propertyID kernel.UUID,
	name string,
	address string,
) (CreatePropertyCommand, error) {
	var nameErr, addressErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		addressErr = errs.NewValueIsRequiredError("address")
	}

	if err := errors.Join(principal.Validate(), propertyID.Validate(), nameErr, addressErr); err != nil {
		return CreatePropertyCommand{}, err
	}

	return CreatePropertyCommand{
		principal:  principal,
		propertyID: propertyID,
		name:       name,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePropertyCommand) Validate() error {
	return c.guard.Validate(ErrCreatePropertyCommandIsNotConstructed)
}

func (c CreatePropertyCommand) Principal() identity.Principal {
	return c.principal
}

func (c CreatePropertyCommand) PropertyID() kernel.UUID {
	return c.propertyID
}

func (c CreatePropertyCommand) Name() string {
	return c.name
}

func (c CreatePropertyCommand) Address() string {
	return c.address
}
