package commands

import (
	"context"

	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler handles recipient confirmation of delivered
// shipments. Confirmation is a specialized Completed transition with two
// parallel gates: the presented code must match the one stored on the
// delivery, and the delivery must currently be in Delivered status.
// From the transition onward it behaves exactly like a direct status update
// to Completed, including the tracking record and the cargo request mirror.
type ConfirmDeliveryCommandHandler struct {
	uowFactory   UoWFactory
	accessPolicy services.TransitionAccessPolicy
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
// Requires a UoWFactory for transactional persistence.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: services.NewTransitionAccessPolicy(),
	}
}

// Handle processes the confirmation command.
// A code mismatch fails with a ValueIsInvalidError before any mutation,
// even when the delivery is in Delivered status.
func (h ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
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

	tracking, err := dlv.Confirm(cmd.ConfirmationCode(), cmd.Location(), cmd.Notes())
	if err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = trackingRepo.Append(ctx, tracking); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = request.Complete(); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateDeliveryStatusResponse{}, err
	}

	return UpdateDeliveryStatusResponse{
		ID:        dlv.ID(),
		Status:    delivery.Completed,
		UpdatedAt: dlv.UpdatedAt(),
	}, nil
}
