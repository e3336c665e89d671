// Package property models the rentals hosts post cleaning jobs for.
package property

import (
	"errors"
	"strings"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var ErrPropertyIsNotConstructed = errors.New("Property must be created via NewProperty or RestoreProperty constructor")

// Property belongs to exactly one host profile.
type Property struct {
	id      kernel.UUID
	hostID  kernel.UUID
	name    string
	address string
	guard   guard.ConstructorGuard
}

func NewProperty(id kernel.UUID, hostID kernel.UUID, name string, address string) (*Property, error) {
	return RestoreProperty(id, hostID, name, address)
}

func RestoreProperty(id kernel.UUID, hostID kernel.UUID, name string, address string) (*Property, error) {
	p := &Property{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setHostID(hostID),
		p.setName(name),
		p.setAddress(address),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Property) Validate() error {
	if p == nil {
		return ErrPropertyIsNotConstructed
	}
	return p.guard.Validate(ErrPropertyIsNotConstructed)
}

func (p *Property) ID() kernel.UUID {
	return p.id
}

func (p *Property) HostID() kernel.UUID {
	return p.hostID
}

func (p *Property) Name() string {
	return p.name
}

func (p *Property) Address() string {
	return p.address
}

// IsOwnedBy reports whether hostID is the owning host profile.
func (p *Property) IsOwnedBy(hostID kernel.UUID) bool {
	return p.hostID.IsEqual(hostID)
}

func (p *Property) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Property) setHostID(hostID kernel.UUID) error {
	if err := hostID.Validate(); err != nil {
		return err
	}
	p.hostID = hostID
	return nil
}

func (p *Property) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Property) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}
