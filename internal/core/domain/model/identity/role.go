package identity

import (
	"fmt"
	"strings"

	"cleaning/internal/pkg/errs"
)

// Role is the immutable capability class of a user.
type Role int

const (
	UnknownRole Role = iota
	RoleHost
	RoleCleaner
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		RoleHost:    "host",
		RoleCleaner: "cleaner",
		RoleAdmin:   "admin",
	}
}

// ParseRole accepts "host", "cleaner" and "admin" case-insensitively.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == needle {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != RoleHost && r != RoleCleaner && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
