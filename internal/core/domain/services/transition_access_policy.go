package services

import (
	"fmt"

	"freightflow/internal/core/domain/model/cargorequest"
	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// TransitionAccessPolicy is a domain service that decides whether a caller
// may request a status transition on a delivery.
//
// Business rules:
//   - The assigned driver may transition the delivery
//   - The owner of the linked cargo request may transition the delivery
//   - Everyone else is rejected before any state is touched
//
// The caller identity is an explicit parameter rather than an ambient
// per-request service, which keeps the policy pure and testable.
//
// Example usage:
//
//	policy := services.NewTransitionAccessPolicy()
//	if err := policy.Authorize(callerID, dlv, request); err != nil {
//	    // errors.Is(err, errs.ErrAccessForbidden) holds here
//	    return err
//	}
type TransitionAccessPolicy struct{}

// NewTransitionAccessPolicy creates a new TransitionAccessPolicy instance.
func NewTransitionAccessPolicy() TransitionAccessPolicy {
	return TransitionAccessPolicy{}
}

// Authorize checks that the caller is either the delivery's assigned driver
// or the owner of the linked cargo request.
//
// Returns:
//   - nil when the caller may proceed
//   - an AccessForbiddenError otherwise; the error unwraps to
//     errs.ErrAccessForbidden so callers can map it to HTTP 403
func (p TransitionAccessPolicy) Authorize(
	callerID kernel.UUID,
	dlv *delivery.Delivery,
	request *cargorequest.CargoRequest,
) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	if err := dlv.Validate(); err != nil {
		return err
	}

	if err := request.Validate(); err != nil {
		return err
	}

	if callerID.IsEqual(dlv.DriverID()) || callerID.IsEqual(request.OwnerID()) {
		return nil
	}

	return errs.NewAccessForbiddenErrorWithCause(
		callerID.String(),
		fmt.Sprintf("delivery %s", dlv.ID().String()),
		fmt.Errorf("caller is neither the assigned driver nor the cargo owner"),
	)
}
