package queries

import (
	"context"

	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryTrackingQueryHandler reads a delivery's tracking trail from
// the database, bypassing the aggregate for an efficient projection.
//
// Example:
//
//	handler := NewGetDeliveryTrackingQueryHandler(db)
//	query, _ := NewGetDeliveryTrackingQuery(deliveryID)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking trail: %w", err)
//	}
type GetDeliveryTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTrackingQueryHandler creates a handler for tracking trail queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryTrackingQueryHandler(db *gorm.DB) GetDeliveryTrackingQueryHandler {
	return GetDeliveryTrackingQueryHandler{db: db}
}

// Handle executes the query and returns the delivery's tracking records,
// oldest first. An unknown delivery yields an empty slice, not an error.
func (h GetDeliveryTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTrackingQuery,
) ([]GetDeliveryTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetDeliveryTrackingQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location,
			reason,
			notes,
			created_at
		FROM delivery_trackings
		WHERE delivery_id = ?
		ORDER BY created_at
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetDeliveryTrackingQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&record.Location,
			&record.Reason,
			&record.Notes,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID
		record.Status = delivery.Status(status)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
