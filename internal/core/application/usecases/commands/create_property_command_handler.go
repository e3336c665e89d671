package commands

import (
	"context"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/services"
)

// CreatePropertyCommandHandler is allowed for hosts only. The property is owned
// by the caller's host profile.
type CreatePropertyCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreatePropertyCommandHandler(uowFactory UoWFactory) CreatePropertyCommandHandler {
	return CreatePropertyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreatePropertyCommandHandler) Handle(ctx context.Context, cmd CreatePropertyCommand) (*property.Property, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(cmd.Principal(), services.HasRole(identity.RoleHost)); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	host, err := hostOf(ctx, uow, cmd.Principal())
	if err != nil {
		return nil, err
	}

	p, err := property.NewProperty(cmd.PropertyID(), host.ID(), cmd.Name(), cmd.Address())
	if err != nil {
		return nil, err
	}

	if err = uow.PropertyRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
