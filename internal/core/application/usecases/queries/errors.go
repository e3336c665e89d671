// Package queries contains read-only operations. Handlers read straight from
// the database with SQL and return flat response structs, bypassing aggregates.
package queries

import (
	"errors"

	"cleaning/internal/core/domain/services"
)

var (
	ErrForbidden        = services.ErrForbidden
	ErrJobNotFound      = errors.New("job not found")
	ErrPropertyNotFound = errors.New("property not found")
)
