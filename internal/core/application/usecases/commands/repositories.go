// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"cleaning/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	IdentityRepoFactory interface {
		UserRepository() ports.UserRepository
		HostRepository() ports.HostRepository
		CleanerRepository() ports.CleanerRepository
	}

	PropertyRepoFactory interface {
		PropertyRepository() ports.PropertyRepository
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// UoW manages transactions across every aggregate type of the marketplace.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobRepo := uow.JobRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		IdentityRepoFactory
		PropertyRepoFactory
		JobRepoFactory
		RatingRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
