package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/cargorequest"
	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/services"
	"freightflow/internal/core/ports"
)

// UpdateDeliveryStatusResponse is the updated delivery projection returned
// after a successful transition.
type UpdateDeliveryStatusResponse struct {
	ID        kernel.UUID
	Status    delivery.Status
	UpdatedAt time.Time
}

// UpdateDeliveryStatusCommandHandler handles the business logic for delivery
// status transitions. It enforces a strict check order: fetch, authorize,
// transition guard, then persist the delivery mutation, the tracking record,
// and the optional cargo request mirror in one transaction.
//
// Example:
//
//	handler := NewUpdateDeliveryStatusCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such delivery: HTTP 404
//	case errors.Is(err, errs.ErrAccessForbidden):
//	    // caller is neither driver nor owner: HTTP 403
//	case errors.Is(err, delivery.ErrInvalidTransition):
//	    // rejected by the legality table: HTTP 409
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // stale read, retry with fresh state
//	}
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory   UoWFactory
	accessPolicy services.TransitionAccessPolicy
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory for transactional persistence.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewTransitionAccessPolicy(),
	}
}

// Handle processes the status transition command.
//
// The transition guard evaluates against the status freshly read inside the
// same transaction that performs the write; a concurrent writer that commits
// in between surfaces as a retryable ConcurrentModificationError from the
// repository's versioned update.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	requestRepo := uow.CargoRequestRepository()
	trackingRepo := uow.TrackingRepository()

	dlv, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	request, err := requestRepo.Get(ctx, dlv.CargoRequestID())
	if err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = h.accessPolicy.Authorize(cmd.CallerID(), dlv, request); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	tracking, err := dlv.Transition(cmd.Status(), cmd.Location(), cmd.Reason(), cmd.Notes())
	if err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = trackingRepo.Append(ctx, tracking); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = h.mirrorRequestStatus(ctx, requestRepo, request, cmd.Status()); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	return UpdateDeliveryStatusResponse{
		ID:        dlv.ID(),
		Status:    dlv.Status(),
		UpdatedAt: dlv.UpdatedAt(),
	}, nil
}

// mirrorRequestStatus propagates terminal delivery statuses onto the linked
// cargo request. Non-terminal transitions leave the request untouched.
func (h UpdateDeliveryStatusCommandHandler) mirrorRequestStatus(
	ctx context.Context,
	requestRepo ports.CargoRequestRepository,
	request *cargorequest.CargoRequest,
	status delivery.Status,
) error {
	switch status {
	case delivery.Completed:
		if err := request.Complete(); err != nil {
			return err
		}
	case delivery.Cancelled:
		if err := request.Cancel(); err != nil {
			return err
		}
	default:
		return nil
	}

	return requestRepo.Update(ctx, request)
}
