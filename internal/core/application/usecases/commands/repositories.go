// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"loadboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// ProfileRepoFactory provides access to profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// LoadUoW manages transactions for load-only operations.
	// Used when commands only modify load aggregates.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// ProfileUoW manages transactions for profile-only operations.
	// Used when commands only modify profile aggregates.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// UoW manages transactions across both load and profile aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   loadRepo := uow.LoadRepository()
	//   profileRepo := uow.ProfileRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LoadRepoFactory
		ProfileRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
