package delivery

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate root tracking a single driver's fulfillment of
// one cargo request, from acceptance to completion or cancellation.
//
// Delivery follows these invariants:
//   - Status is always a member of the closed enumeration
//   - Status changes only through the transition guard (legality table)
//   - The assigned driver is set at creation and immutable thereafter
//   - UpdatedAt advances on every status mutation
//   - Exactly one Tracking record accompanies each successful transition
//   - Never deleted, only terminally stateful (Completed or Cancelled)
//
// The version field is an optimistic-concurrency token: the store rejects
// a save whose version no longer matches the stored row, so at most one of
// two concurrent transitions on the same delivery can succeed.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// cargoRequestID references the originating cargo request
	cargoRequestID kernel.UUID

	// driverID is the assigned driver, immutable after creation
	driverID kernel.UUID

	// confirmationCode is handed to the recipient at creation and must be
	// presented to confirm completion
	confirmationCode string

	// status is the current state in the delivery lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt advances on every status mutation
	updatedAt time.Time

	// version is the optimistic-concurrency token managed by the store
	version int

	// isConstructed ensures the delivery was created via a factory method
	isConstructed bool
}

// NewDelivery creates a new Delivery in InProgress status.
//
// Parameters:
//   - id: unique identifier for the delivery (must be a valid UUID)
//   - cargoRequestID: the originating cargo request (must be a valid UUID)
//   - driverID: the assigned driver (must be a valid UUID)
//   - confirmationCode: code required to confirm completion (non-empty)
//
// Returns the created delivery, or a validation error if any parameter
// is invalid.
func NewDelivery(
	id kernel.UUID,
	cargoRequestID kernel.UUID,
	driverID kernel.UUID,
	confirmationCode string,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		cargoRequestID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}

	if confirmationCode == "" {
		return nil, errs.NewValueIsRequiredError("confirmationCode")
	}

	now := time.Now().UTC()
	return &Delivery{
		id:               id,
		cargoRequestID:   cargoRequestID,
		driverID:         driverID,
		confirmationCode: confirmationCode,
		status:           InProgress,
		createdAt:        now,
		updatedAt:        now,
		version:          1,
		isConstructed:    true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistence.
// Used by repositories when loading stored rows; the status must be a
// valid member of the enumeration.
func RestoreDelivery(
	id kernel.UUID,
	cargoRequestID kernel.UUID,
	driverID kernel.UUID,
	confirmationCode string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		cargoRequestID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("delivery version")
	}

	return &Delivery{
		id:               id,
		cargoRequestID:   cargoRequestID,
		driverID:         driverID,
		confirmationCode: confirmationCode,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed through
// a factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CargoRequestID returns the originating cargo request's identifier.
func (d *Delivery) CargoRequestID() kernel.UUID {
	return d.cargoRequestID
}

// DriverID returns the assigned driver's identifier.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// ConfirmationCode returns the code required to confirm completion.
func (d *Delivery) ConfirmationCode() string {
	return d.confirmationCode
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the creation time of the delivery.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the time of the last status mutation.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Version returns the optimistic-concurrency token.
func (d *Delivery) Version() int {
	return d.version
}

// Transition requests a status change and, on success, returns the single
// Tracking record that must be persisted alongside the mutated delivery.
//
// Validation order, each failure leaving the aggregate untouched:
//  1. location must be non-empty for every transition
//  2. reason must be non-empty when transitioning to Cancelled
//  3. the requested status must be a member of the enumeration
//  4. (current, requested) must be present in the legality table
//
// On success the status becomes the requested one and UpdatedAt advances.
//
// Example:
//
//	tracking, err := d.Transition(delivery.PickedUp, "40.1,29.0", "", "")
//	var transitionErr *delivery.InvalidTransitionError
//	if errors.As(err, &transitionErr) {
//	    // transitionErr.From and transitionErr.To identify the rejected pair
//	}
func (d *Delivery) Transition(to Status, location, reason, notes string) (*Tracking, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if location == "" {
		return nil, errs.NewValueIsRequiredError("location")
	}

	if to == Cancelled && reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	if err := to.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := d.status.TransitionTo(to)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tracking, err := NewTracking(kernel.NewUUID(), d.id, newStatus, location, reason, notes, now)
	if err != nil {
		return nil, err
	}

	d.status = newStatus
	d.updatedAt = now
	return tracking, nil
}

// Confirm completes the delivery after checking the recipient's
// confirmation code. Both gates must pass: the code must match the value
// stored at creation, and the current status must admit the
// Delivered -> Completed transition.
//
// Returns:
//   - the Tracking record for the Completed transition on success
//   - a ValueIsInvalidError on code mismatch, with no mutation
//   - an InvalidTransitionError when the delivery is not in Delivered status
func (d *Delivery) Confirm(confirmationCode, location, notes string) (*Tracking, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if confirmationCode == "" {
		return nil, errs.NewValueIsRequiredError("confirmationCode")
	}

	if confirmationCode != d.confirmationCode {
		return nil, errs.NewValueIsInvalidError("confirmation code")
	}

	return d.Transition(Completed, location, "", notes)
}
