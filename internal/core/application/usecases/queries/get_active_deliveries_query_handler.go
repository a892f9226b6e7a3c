package queries

import (
	"context"

	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the
// database. Filters out terminal deliveries to provide active workload
// visibility.
//
// Example:
//
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//	query := NewGetActiveDeliveriesQuery()
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active deliveries: %w", err)
//	}
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal deliveries.
// Results are sorted by delivery ID for consistent output.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			cargo_request_id,
			driver_id,
			status,
			updated_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, delivery.Completed, delivery.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanActiveDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// rowScanner is the subset of sql.Rows needed to scan one row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanActiveDelivery maps one deliveries row to a response projection.
// Shared with the stalled-deliveries handler, which selects the same columns.
func scanActiveDelivery(rows rowScanner) (GetActiveDeliveriesQueryResponse, error) {
	var resp GetActiveDeliveriesQueryResponse
	var id, cargoRequestID, driverID uuid.UUID
	var status int

	if err := rows.Scan(
		&id,
		&cargoRequestID,
		&driverID,
		&status,
		&resp.UpdatedAt,
	); err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	requestID, err := kernel.UUIDFromBytes(cargoRequestID[:])
	if err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	driver, err := kernel.UUIDFromBytes(driverID[:])
	if err != nil {
		return GetActiveDeliveriesQueryResponse{}, err
	}

	resp.ID = deliveryID
	resp.CargoRequestID = requestID
	resp.DriverID = driver
	resp.Status = delivery.Status(status)
	return resp, nil
}
