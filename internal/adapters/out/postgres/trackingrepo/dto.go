// Package trackingrepo provides data transfer objects and mapping functions
// for delivery tracking persistence. Tracking rows are append-only: the
// repository exposes no update or delete.
package trackingrepo

import (
	"time"

	"freightflow/internal/core/domain/model/delivery"

	"github.com/google/uuid"
)

// TrackingDTO represents the database structure for persisting delivery
// tracking records.
type TrackingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;index"`
	Status     int
	Location   string
	Reason     string
	Notes      string
	CreatedAt  time.Time
}

// TableName specifies the database table name for tracking records.
func (TrackingDTO) TableName() string {
	return "delivery_trackings"
}

// fromDomain converts a tracking record to its database representation.
func fromDomain(record *delivery.Tracking) TrackingDTO {
	return TrackingDTO{
		ID:         record.ID().Bytes(),
		DeliveryID: record.DeliveryID().Bytes(),
		Status:     int(record.Status()),
		Location:   record.Location(),
		Reason:     record.Reason(),
		Notes:      record.Notes(),
		CreatedAt:  record.CreatedAt(),
	}
}
