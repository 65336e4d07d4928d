package loadrepo

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
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

// Get retrieves a load by ID.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWhereStatus writes the aggregate's lifecycle fields conditioned on the
// stored row still being in one of the expected statuses. Zero matched rows
// means another actor transitioned the load first; that is reported as false
// with no error, and the aggregate is not tracked.
func (r *GormLoadRepository) UpdateWhereStatus(
	ctx context.Context, aggregate *load.Load, expected ...load.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	if len(expected) == 0 {
		return false, errs.NewValueIsRequiredError("expected statuses")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND status IN ?", dto.ID, statusValues(expected)).
		Select("driver_id", "status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// DeleteOpenLoad removes the load conditioned on it still being open and owned
// by the given shipper. Zero matched rows is reported as false with no error.
func (r *GormLoadRepository) DeleteOpenLoad(ctx context.Context, id, shipperID kernel.UUID) (bool, error) {
	if err := errors.Join(id.Validate(), shipperID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND shipper_id = ? AND status = ?", id.Bytes(), shipperID.Bytes(), int(load.Open)).
		Delete(&LoadDTO{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func statusValues(statuses []load.Status) []int {
	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}
	return values
}
