package identity

import (
	"errors"

	"cleaning/internal/core/domain/model/kernel"
)

// Principal is an authenticated caller: who it is and what role it holds.
type Principal struct {
	userID kernel.UUID
	role   Role
}

func NewPrincipal(userID kernel.UUID, role Role) (Principal, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}
	return Principal{userID: userID, role: role}, nil
}

func (p Principal) UserID() kernel.UUID {
	return p.userID
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) Validate() error {
	return errors.Join(p.userID.Validate(), p.role.Validate())
}
