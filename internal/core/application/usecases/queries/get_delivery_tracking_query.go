// Package queries contains read-only operations over the delivery store.
// Implements the Query side of the CQRS architecture: handlers read raw
// projections directly from the database without loading full aggregates.
package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrGetDeliveryTrackingQueryIsNotConstructed = errors.New(
		"GetDeliveryTrackingQuery must be created via NewGetDeliveryTrackingQuery constructor",
	)
)

// GetDeliveryTrackingQuery retrieves the audit trail of a single delivery:
// one record per successful status transition, oldest first.
//
// Example:
//
//	query, err := NewGetDeliveryTrackingQuery(deliveryID)
//	if err != nil {
//	    return err
//	}
//
//	records, err := handler.Handle(ctx, query)
type GetDeliveryTrackingQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryTrackingQuery creates a query for a delivery's tracking trail.
// Validates that the delivery identifier is a valid UUID.
func NewGetDeliveryTrackingQuery(deliveryID kernel.UUID) (GetDeliveryTrackingQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryTrackingQuery{}, err
	}

	return GetDeliveryTrackingQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryTrackingQueryIsNotConstructed if validation fails.
func (q GetDeliveryTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTrackingQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose trail is requested.
func (q GetDeliveryTrackingQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryTrackingQueryResponse represents one tracking record in the
// delivery's audit trail.
type GetDeliveryTrackingQueryResponse struct {
	ID        kernel.UUID
	Status    delivery.Status
	Location  string
	Reason    string
	Notes     string
	CreatedAt time.Time
}
