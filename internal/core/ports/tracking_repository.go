package ports

import (
	"context"

	"freightflow/internal/core/domain/model/delivery"
)

// TrackingRepository defines the persistence contract for delivery tracking
// records. Records are append-only: there is no update or delete.
type TrackingRepository interface {
	// Append persists a new tracking record. It must be called within the
	// same unit of work as the delivery mutation that produced the record,
	// so the two commit atomically.
	Append(ctx context.Context, record *delivery.Tracking) error
}
