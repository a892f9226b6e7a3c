package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrConfirmationCodeIsRequired = errors.New("confirmation code is required")
)

// ConfirmDeliveryCommand represents a recipient-side confirmation that a
// delivered shipment was received, completing the delivery. The caller must
// present the confirmation code generated when the delivery was created.
//
// Example:
//
//	cmd, err := NewConfirmDeliveryCommand(deliveryID, "4812", ownerID, "warehouse dock 3", "")
//	if err != nil {
//	    return fmt.Errorf("invalid confirmation request: %w", err)
//	}
//
//	handler := NewConfirmDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID       kernel.UUID
	confirmationCode string
	callerID         kernel.UUID
	location         string
	notes            string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivered shipment.
// Validates that both identifiers are valid and that the confirmation code
// and location are non-empty. Returns an error if any validation fails.
func NewConfirmDeliveryCommand(
	deliveryID kernel.UUID,
	confirmationCode string,
	callerID kernel.UUID,
	location string,
	notes string,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setConfirmationCode(confirmationCode),
		cmd.setCallerID(callerID),
		cmd.setLocation(location),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to confirm.
func (c ConfirmDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ConfirmationCode returns the code presented by the caller.
func (c ConfirmDeliveryCommand) ConfirmationCode() string {
	return c.confirmationCode
}

// CallerID returns the identity of the requesting caller.
func (c ConfirmDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Location returns the caller-supplied position string.
func (c ConfirmDeliveryCommand) Location() string {
	return c.location
}

// Notes returns the optional caller remarks.
func (c ConfirmDeliveryCommand) Notes() string {
	return c.notes
}

func (c *ConfirmDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ConfirmDeliveryCommand) setConfirmationCode(code string) error {
	if code == "" {
		return ErrConfirmationCodeIsRequired
	}

	c.confirmationCode = code
	return nil
}

func (c *ConfirmDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *ConfirmDeliveryCommand) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
