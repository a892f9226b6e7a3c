package delivery

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrTrackingIsNotConstructed is returned when a Tracking instance was not
// created through the NewTracking factory method.
var ErrTrackingIsNotConstructed = errors.New("Tracking must be created via NewTracking constructor")

// Tracking is an immutable append-only audit record created on every
// successful delivery status transition.
//
// Tracking follows these invariants:
//   - Exactly one record is appended per successful transition
//   - Never mutated after creation
//   - Reason is present when the recorded status is Cancelled
//
// Tracking records are owned by their Delivery and persisted in the same
// transaction as the Delivery mutation.
type Tracking struct {
	// id is the unique identifier for the record
	id kernel.UUID

	// deliveryID references the owning delivery
	deliveryID kernel.UUID

	// status is the new delivery status at the time of this record
	status Status

	// location is the caller-supplied position, free text or a coordinate string
	location string

	// reason explains a cancellation; empty for all other statuses
	reason string

	// notes holds optional caller remarks
	notes string

	// createdAt is the time the transition was recorded
	createdAt time.Time

	// isConstructed ensures the record was created via NewTracking
	isConstructed bool
}

// NewTracking creates a new Tracking record with validation.
//
// Parameters:
//   - id: unique identifier for the record (must be a valid UUID)
//   - deliveryID: the owning delivery (must be a valid UUID)
//   - status: the delivery status being recorded (must be a valid status)
//   - location: caller-supplied position (required, non-empty)
//   - reason: cancellation reason (required when status is Cancelled)
//   - notes: optional remarks
//   - createdAt: time of the transition
//
// Returns the created record, or a validation error if any parameter
// is invalid.
func NewTracking(
	id kernel.UUID,
	deliveryID kernel.UUID,
	status Status,
	location string,
	reason string,
	notes string,
	createdAt time.Time,
) (*Tracking, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if location == "" {
		return nil, errs.NewValueIsRequiredError("location")
	}

	if status == Cancelled && reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Tracking{
		id:            id,
		deliveryID:    deliveryID,
		status:        status,
		location:      location,
		reason:        reason,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreTracking reconstructs a Tracking record from persistence.
// All fields are taken as-is; stored records already passed validation
// when they were first created.
func RestoreTracking(
	id kernel.UUID,
	deliveryID kernel.UUID,
	status Status,
	location string,
	reason string,
	notes string,
	createdAt time.Time,
) (*Tracking, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Tracking{
		id:            id,
		deliveryID:    deliveryID,
		status:        status,
		location:      location,
		reason:        reason,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Tracking instance was properly constructed.
func (t *Tracking) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackingIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (t *Tracking) ID() kernel.UUID {
	return t.id
}

// DeliveryID returns the owning delivery's identifier.
func (t *Tracking) DeliveryID() kernel.UUID {
	return t.deliveryID
}

// Status returns the delivery status recorded by this entry.
func (t *Tracking) Status() Status {
	return t.status
}

// Location returns the caller-supplied position string.
func (t *Tracking) Location() string {
	return t.location
}

// Reason returns the cancellation reason, or an empty string.
func (t *Tracking) Reason() string {
	return t.reason
}

// Notes returns the optional caller remarks.
func (t *Tracking) Notes() string {
	return t.notes
}

// CreatedAt returns the time the transition was recorded.
func (t *Tracking) CreatedAt() time.Time {
	return t.createdAt
}
