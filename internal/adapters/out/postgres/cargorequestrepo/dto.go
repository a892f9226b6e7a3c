// Package cargorequestrepo provides data transfer objects and mapping
// functions for cargo request persistence. Only the fields the delivery
// lifecycle reads and mirrors are mapped here.
package cargorequestrepo

import (
	"time"

	"freightflow/internal/core/domain/model/cargorequest"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CargoRequestDTO represents the database structure for persisting the
// cargo request view used by the delivery lifecycle.
type CargoRequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int       `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for cargo request entities.
func (CargoRequestDTO) TableName() string {
	return "cargo_requests"
}

// fromDomain converts a cargo request aggregate to its database representation.
func fromDomain(aggregate *cargorequest.CargoRequest) CargoRequestDTO {
	return CargoRequestDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a cargo request aggregate.
func toDomain(dto CargoRequestDTO) (*cargorequest.CargoRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return cargorequest.RestoreCargoRequest(
		id,
		ownerID,
		cargorequest.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
