// Package http provides the inbound HTTP adapter for the delivery
// lifecycle. It translates requests into commands and queries and
// maps every error kind to a distinct HTTP status, so callers can
// tell retryable conflicts apart from permanent failures.
package http

import (
	"errors"
	"net/http"
	"time"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// callerHeader carries the authenticated caller identity, resolved by
// whatever auth middleware fronts this service. Identity issuance itself
// is out of scope here.
const callerHeader = "X-Caller-Id"

// UpdateDeliveryStatusRequest is the body of POST /api/v1/deliveries/:id/status.
type UpdateDeliveryStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Reason   string `json:"reason,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ConfirmDeliveryRequest is the body of POST /api/v1/deliveries/:id/confirm.
type ConfirmDeliveryRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
	Location         string `json:"location"`
	Notes            string `json:"notes,omitempty"`
}

// DeliveryResponse is the updated delivery projection returned by both
// lifecycle endpoints.
type DeliveryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackingResponse is one audit-trail entry of GET /api/v1/deliveries/:id/tracking.
type TrackingResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveDeliveryResponse is one entry of GET /api/v1/deliveries/active.
type ActiveDeliveryResponse struct {
	ID             string    `json:"id"`
	CargoRequestID string    `json:"cargo_request_id"`
	DriverID       string    `json:"driver_id"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Retryable marks stale-state conflicts the caller may retry with
	// fresh state. All other failures need different input.
	Retryable bool `json:"retryable,omitempty"`
}

// Server implements the HTTP handlers for the delivery lifecycle.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	updateStatusHandler    commands.UpdateDeliveryStatusCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler

	// Query handlers
	getTrackingHandler         queries.GetDeliveryTrackingQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getTrackingHandler queries.GetDeliveryTrackingQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		updateStatusHandler:        updateStatusHandler,
		confirmDeliveryHandler:     confirmDeliveryHandler,
		getTrackingHandler:         getTrackingHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
	}
}

// RegisterRoutes wires the lifecycle endpoints onto an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/deliveries/:id/status", s.UpdateDeliveryStatus)
	e.POST("/api/v1/deliveries/:id/confirm", s.ConfirmDelivery)
	e.GET("/api/v1/deliveries/:id/tracking", s.GetDeliveryTracking)
	e.GET("/api/v1/deliveries/active", s.GetActiveDeliveries)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status -
// requests a lifecycle transition on behalf of the caller.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, callerID, errResp := parseIdentities(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		deliveryID, status, callerID, req.Location, req.Reason, req.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	result, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(result))
}

// ConfirmDelivery handles POST /api/v1/deliveries/:id/confirm -
// completes a delivered shipment using the recipient's confirmation code.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	deliveryID, callerID, errResp := parseIdentities(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	var req ConfirmDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		deliveryID, req.ConfirmationCode, callerID, req.Location, req.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation request: "+err.Error())
	}

	result, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(result))
}

// GetDeliveryTracking handles GET /api/v1/deliveries/:id/tracking -
// returns the delivery's audit trail, oldest first.
func (s *Server) GetDeliveryTracking(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryTrackingQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking query: "+err.Error())
	}

	records, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TrackingResponse, len(records))
	for i, record := range records {
		response[i] = TrackingResponse{
			ID:        record.ID.String(),
			Status:    record.Status.String(),
			Location:  record.Location,
			Reason:    record.Reason,
			Notes:     record.Notes,
			CreatedAt: record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active -
// returns all deliveries not yet in a terminal state.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveDeliveryResponse, len(deliveries))
	for i, dlv := range deliveries {
		response[i] = ActiveDeliveryResponse{
			ID:             dlv.ID.String(),
			CargoRequestID: dlv.CargoRequestID.String(),
			DriverID:       dlv.DriverID.String(),
			Status:         dlv.Status.String(),
			UpdatedAt:      dlv.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseIdentities extracts the delivery id from the path and the caller id
// from the request header.
func parseIdentities(ctx echo.Context) (kernel.UUID, kernel.UUID, *ErrorResponse) {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, &ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id",
		}
	}

	callerID, err := kernel.UUIDFromString(ctx.Request().Header.Get(callerHeader))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, &ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing or invalid " + callerHeader + " header",
		}
	}

	return deliveryID, callerID, nil
}

func toDeliveryResponse(result commands.UpdateDeliveryStatusResponse) DeliveryResponse {
	return DeliveryResponse{
		ID:        result.ID.String(),
		Status:    result.Status.String(),
		UpdatedAt: result.UpdatedAt,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps an error kind from the application layer to its HTTP
// status. The mapping keeps retryable conflicts (stale state) separate
// from transition-table rejections and validation failures.
func writeError(ctx echo.Context, err error) error {
	var invalidTransition *delivery.InvalidTransitionError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrAccessForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.As(err, &invalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: invalidTransition.Error(),
		})
	case errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:      http.StatusConflict,
			Message:   err.Error(),
			Retryable: true,
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
