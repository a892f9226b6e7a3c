// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern
// for the delivery aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The version column is the optimistic-concurrency token used
// by Update to reject stale writes.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CargoRequestID   uuid.UUID `gorm:"type:uuid;index"`
	DriverID         uuid.UUID `gorm:"type:uuid;index"`
	ConfirmationCode string
	Status           int `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		CargoRequestID:   aggregate.CargoRequestID().Bytes(),
		DriverID:         aggregate.DriverID().Bytes(),
		ConfirmationCode: aggregate.ConfirmationCode(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cargoRequestID, err := kernel.UUIDFromBytes(dto.CargoRequestID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		cargoRequestID,
		driverID,
		dto.ConfirmationCode,
		delivery.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
