package cargorequest

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
)

// ErrCargoRequestIsNotConstructed is returned when a CargoRequest instance
// was not created through a factory method.
var ErrCargoRequestIsNotConstructed = errors.New(
	"CargoRequest must be created via NewCargoRequest constructor",
)

// CargoRequest is the shipment posting created by a cargo owner.
// One delivery fulfills one request; when that delivery reaches a terminal
// state the request's status mirrors it. The delivery lifecycle touches no
// other fields of this aggregate.
type CargoRequest struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// ownerID is the cargo owner who posted the request
	ownerID kernel.UUID

	// status is the current state in the request lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt advances on every status mutation
	updatedAt time.Time

	// isConstructed ensures the request was created via a factory method
	isConstructed bool
}

// NewCargoRequest creates a new CargoRequest in Pending status.
func NewCargoRequest(id kernel.UUID, ownerID kernel.UUID) (*CargoRequest, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &CargoRequest{
		id:            id,
		ownerID:       ownerID,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCargoRequest reconstructs a CargoRequest aggregate from persistence.
func RestoreCargoRequest(
	id kernel.UUID,
	ownerID kernel.UUID,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*CargoRequest, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &CargoRequest{
		id:            id,
		ownerID:       ownerID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the CargoRequest instance was properly constructed.
func (c *CargoRequest) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (c *CargoRequest) IsEqual(other *CargoRequest) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (c *CargoRequest) ID() kernel.UUID {
	return c.id
}

// OwnerID returns the cargo owner's identifier.
func (c *CargoRequest) OwnerID() kernel.UUID {
	return c.ownerID
}

// Status returns the current status of the request.
func (c *CargoRequest) Status() Status {
	return c.status
}

// CreatedAt returns the creation time of the request.
func (c *CargoRequest) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the time of the last status mutation.
func (c *CargoRequest) UpdatedAt() time.Time {
	return c.updatedAt
}

// Accept marks the request as accepted when a delivery is created for it.
func (c *CargoRequest) Accept() error {
	newStatus, err := c.status.Accept()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.updatedAt = time.Now().UTC()
	return nil
}

// Complete mirrors the linked delivery reaching Completed.
func (c *CargoRequest) Complete() error {
	newStatus, err := c.status.Complete()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.updatedAt = time.Now().UTC()
	return nil
}

// Cancel mirrors the linked delivery being cancelled.
func (c *CargoRequest) Cancel() error {
	newStatus, err := c.status.Cancel()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.updatedAt = time.Now().UTC()
	return nil
}
