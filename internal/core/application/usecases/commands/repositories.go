// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"tradlogistics/internal/core/ports"
)

// Concurrency outcomes of conditional status updates. Both are expected
// results of the matching race and of simultaneous transitions on the same
// delivery, not failures of the system.
var (
	// ErrDeliveryNoLongerAvailable is returned to a driver whose accept
	// attempt lost the race: the delivery left the searching status before
	// the conditional update committed.
	ErrDeliveryNoLongerAvailable = errors.New("delivery is no longer available")

	// ErrDeliveryModifiedConcurrently is returned when any other transition
	// loses its conditional update, such as a cancel racing a driver's
	// status advance.
	ErrDeliveryModifiedConcurrently = errors.New("delivery was modified concurrently")
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

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// FeedbackRepoFactory provides access to the feedback repository within a transaction.
	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	// Used by commands that touch nothing but the delivery aggregate.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW manages transactions spanning deliveries, accounts, and feedback.
	// Used by commands that coordinate changes across aggregate types, such
	// as settlement writing a rating and updating the driver profile in one
	// transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveryRepo := uow.DeliveryRepository()
	//   accountRepo := uow.AccountRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRepoFactory
		AccountRepoFactory
		FeedbackRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
