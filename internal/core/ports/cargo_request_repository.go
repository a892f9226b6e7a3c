package ports

import (
	"context"

	"freightflow/internal/core/domain/model/cargorequest"
	"freightflow/internal/core/domain/model/kernel"
)

// CargoRequestRepository defines the persistence contract for the partial
// cargo request view used by the delivery lifecycle.
type CargoRequestRepository interface {
	// Add persists a new cargo request to storage.
	Add(ctx context.Context, aggregate *cargorequest.CargoRequest) error

	// Update persists a status mutation of an existing cargo request.
	// Only the status mirror transitions (Completed, Cancelled) flow
	// through this method from the delivery lifecycle.
	Update(ctx context.Context, aggregate *cargorequest.CargoRequest) error

	// Get retrieves a cargo request by its unique identifier.
	// Returns an ObjectNotFoundError when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*cargorequest.CargoRequest, error)
}
