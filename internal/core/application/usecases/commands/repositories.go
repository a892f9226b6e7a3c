// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transition guard, and transactional persistence.
package commands

import (
	"context"

	"freightflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure the delivery mutation, the tracking append, and
// the cargo request mirror commit as one atomic unit.
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

	// CargoRequestRepoFactory provides access to the cargo request repository within a transaction.
	CargoRequestRepoFactory interface {
		CargoRequestRepository() ports.CargoRequestRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// UoW manages transactions across the delivery aggregate, its tracking
	// trail, and the linked cargo request. Both lifecycle commands need all
	// three repositories because any transition may end in a terminal state
	// that mirrors onto the request.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveryRepo := uow.DeliveryRepository()
	//   trackingRepo := uow.TrackingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRepoFactory
		CargoRequestRepoFactory
		TrackingRepoFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle commands.
	UoWFactory interface {
		Create() UoW
	}
)
