package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for profile aggregates.
type ProfileRepository interface {
	// Add persists a new profile. Adding a profile whose email is already
	// registered fails with errs.ErrValueIsInvalid wrapping the unique
	// violation.
	Add(ctx context.Context, aggregate *profile.Profile) error

	// Get retrieves a profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)

	// GetByEmail retrieves a profile by its normalized sign-in email.
	GetByEmail(ctx context.Context, email string) (*profile.Profile, error)

	// GetAllDrivers retrieves every profile holding the driver role,
	// the candidate set for the matching stub.
	GetAllDrivers(ctx context.Context) ([]*profile.Profile, error)
}
