package queries

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetStalledDeliveriesQueryHandler retrieves active deliveries that have
// not progressed within the query's threshold. Returns the same projection
// as the active-deliveries query so callers can reuse rendering.
type GetStalledDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledDeliveriesQueryHandler creates a handler for stalled delivery queries.
// Requires a GORM database connection for query execution.
func NewGetStalledDeliveriesQueryHandler(db *gorm.DB) GetStalledDeliveriesQueryHandler {
	return GetStalledDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve active deliveries whose UpdatedAt
// is older than the threshold. Results are sorted by staleness, most
// stalled first.
func (h GetStalledDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetStalledDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Threshold())
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
		  AND updated_at < ?
		ORDER BY updated_at
	`, delivery.Completed, delivery.Cancelled, cutoff).Rows()
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
