package commands

import (
	"errors"

	"cleaning/internal/core/domain/services"
)

// Business outcomes returned by command handlers. All are caller-correctable
// and are never retried internally.
var (
	ErrForbidden              = services.ErrForbidden
	ErrJobNotFound            = errors.New("job not found")
	ErrChecklistItemNotFound  = errors.New("checklist item not found")
	ErrInvalidProperty        = errors.New("invalid property")
	ErrNotClaimable           = errors.New("job is not open or not found")
	ErrNotStartable           = errors.New("job is not claimed")
	ErrNotCompletable         = errors.New("job is not claimed or in progress")
	ErrChecklistIncomplete    = errors.New("all checklist items must be checked before completion")
	ErrNotCompleted           = errors.New("job is not completed")
	ErrNoCleaner              = errors.New("job has no cleaner")
	ErrAlreadyRated           = errors.New("rating already exists")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrConcurrentModification = errors.New("job was modified concurrently")
)
