package identity

import (
	"errors"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrHostIsNotConstructed = errors.New("Host must be created via NewHost or RestoreHost constructor")

// Host is the profile of a property owner.
type Host struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string
	phone  string
	guard  guard.ConstructorGuard
}

func NewHost(id kernel.UUID, userID kernel.UUID, name string, phone string) (*Host, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &Host{
		id:     id,
		userID: userID,
		name:   name,
		phone:  phone,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func RestoreHost(id kernel.UUID, userID kernel.UUID, name string, phone string) (*Host, error) {
	return NewHost(id, userID, name, phone)
}

func (h *Host) Validate() error {
	if h == nil {
		return ErrHostIsNotConstructed
	}
	return h.guard.Validate(ErrHostIsNotConstructed)
}

func (h *Host) ID() kernel.UUID {
	return h.id
}

func (h *Host) UserID() kernel.UUID {
	return h.userID
}

func (h *Host) Name() string {
	return h.name
}

func (h *Host) Phone() string {
	return h.phone
}
