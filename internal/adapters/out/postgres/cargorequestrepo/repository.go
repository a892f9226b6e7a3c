package cargorequestrepo

import (
	"context"
	"errors"

	"freightflow/internal/core/domain/model/cargorequest"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRequestRepository implements CargoRequestRepository using GORM.
type GormCargoRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCargoRequestRepository creates a new GORM cargo request repository.
func NewGormCargoRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoRequestRepository {
	return &GormCargoRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cargo request to the database.
func (r *GormCargoRequestRepository) Add(ctx context.Context, aggregate *cargorequest.CargoRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a status mutation of an existing cargo request.
func (r *GormCargoRequestRepository) Update(ctx context.Context, aggregate *cargorequest.CargoRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CargoRequestDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cargo request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cargo request by ID.
func (r *GormCargoRequestRepository) Get(ctx context.Context, id kernel.UUID) (*cargorequest.CargoRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CargoRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
