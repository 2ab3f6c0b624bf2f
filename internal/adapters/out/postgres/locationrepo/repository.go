package locationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
	"bakery/internal/pkg/errs"
)

// GormPickupLocationRepository implements PickupLocationRepository using GORM.
type GormPickupLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupLocationRepository creates a new GORM pickup location repository.
func NewGormPickupLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupLocationRepository {
	return &GormPickupLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup location to the database.
func (r *GormPickupLocationRepository) Add(ctx context.Context, aggregate *location.PickupLocation) error {
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

// Get retrieves a pickup location by ID.
func (r *GormPickupLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.PickupLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all pickup locations ordered by name.
func (r *GormPickupLocationRepository) GetAll(ctx context.Context) ([]*location.PickupLocation, error) {
	var dtos []PickupLocationDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.PickupLocation, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}
