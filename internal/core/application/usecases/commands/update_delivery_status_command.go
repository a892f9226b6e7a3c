package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	ErrLocationIsRequired = errors.New("location is required")
	ErrReasonIsRequired   = errors.New("reason is required when cancelling")
)

// UpdateDeliveryStatusCommand represents a caller's request to move a
// delivery to a new lifecycle status. Carries the caller identity
// explicitly so authorization never depends on ambient request state.
//
// Example:
//
//	status, _ := delivery.StatusFromString("InTransit")
//	cmd, err := NewUpdateDeliveryStatusCommand(deliveryID, status, driverID, "40.1,29.0", "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewUpdateDeliveryStatusCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	callerID   kernel.UUID
	location   string
	reason     string
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to request a status transition.
// Validates that both identifiers are valid, the status is a member of the
// enumeration, the location is non-empty, and a reason accompanies a
// cancellation. Returns an error if any validation fails.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	status delivery.Status,
	callerID kernel.UUID,
	location string,
	reason string,
	notes string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
		cmd.setCallerID(callerID),
		cmd.setLocation(location),
		cmd.setReason(reason, status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to transition.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the requested lifecycle status.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// CallerID returns the identity of the requesting caller.
func (c UpdateDeliveryStatusCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Location returns the caller-supplied position string.
func (c UpdateDeliveryStatusCommand) Location() string {
	return c.location
}

// Reason returns the cancellation reason, empty for other statuses.
func (c UpdateDeliveryStatusCommand) Reason() string {
	return c.reason
}

// Notes returns the optional caller remarks.
func (c UpdateDeliveryStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateDeliveryStatusCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}

func (c *UpdateDeliveryStatusCommand) setReason(reason string, status delivery.Status) error {
	if status == delivery.Cancelled && reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
