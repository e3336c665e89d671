package services

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
)

// ErrForbidden is returned by Authorize when the principal does not satisfy the rule.
var ErrForbidden = errors.New("forbidden")

// Rule is a capability predicate over the calling principal. Ownership facts
// are resolved by the caller and lifted into a Rule with Is.
type Rule func(p identity.Principal) bool

// HasRole allows principals holding any of the given roles.
func HasRole(roles ...identity.Role) Rule {
	return func(p identity.Principal) bool {
		for _, r := range roles {
			if p.Role() == r {
				return true
			}
		}
		return false
	}
}

// Is lifts a precomputed fact, such as "caller owns the property", into a Rule.
func Is(fact bool) Rule {
	return func(identity.Principal) bool {
		return fact
	}
}

// AnyOf allows the principal if at least one rule does.
func AnyOf(rules ...Rule) Rule {
	return func(p identity.Principal) bool {
		for _, rule := range rules {
			if rule(p) {
				return true
			}
		}
		return false
	}
}

// AllOf allows the principal only if every rule does.
func AllOf(rules ...Rule) Rule {
	return func(p identity.Principal) bool {
		for _, rule := range rules {
			if !rule(p) {
				return false
			}
		}
		return true
	}
}

// Authorize checks the principal against rule. An invalid principal is always denied.
//
// Example:
//
//	err := services.Authorize(principal, services.AnyOf(
//	    services.HasRole(identity.RoleAdmin),
//	    services.Is(job.IsAssignedTo(cleaner.ID())),
//	))
func Authorize(p identity.Principal, rule Rule) error {
	if err := p.Validate(); err != nil {
		return errors.Join(ErrForbidden, err)
	}
	if rule == nil || !rule(p) {
		return ErrForbidden
	}
	return nil
}
