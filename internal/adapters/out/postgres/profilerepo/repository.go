package profilerepo

import (
	"context"
	"errors"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new profile to the database. An already-registered email
// surfaces as a validation error rather than a raw driver error.
func (r *GormProfileRepository) Add(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email is already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a profile by ID.
func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a profile by its normalized sign-in email.
func (r *GormProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDrivers retrieves all profiles holding the driver role.
func (r *GormProfileRepository) GetAllDrivers(ctx context.Context) ([]*profile.Profile, error) {
	var dtos []ProfileDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "role = ?", int(profile.RoleDriver)).Error; err != nil {
		return nil, err
	}

	profiles := make([]*profile.Profile, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// isUniqueViolation recognizes unique constraint violations across the
// drivers in play: lib/pq in production, whatever GORM translates elsewhere.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
