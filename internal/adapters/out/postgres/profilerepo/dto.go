// Package profilerepo provides data transfer objects and mapping functions for profile persistence.
// This package implements the repository pattern for the profile domain aggregate, handling
// the conversion between domain entities and database representations.
package profilerepo

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profile aggregates.
// The email column carries a unique index: it is the sign-in identifier.
type ProfileDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	Email        string `gorm:"uniqueIndex"`
	Role         int    `gorm:"index"`
	PasswordHash string
	CreatedAt    time.Time
}

// TableName specifies the database table name for profile entities.
// Overrides GORM's default naming convention to use "profiles".
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile domain aggregate to its database representation.
func fromDomain(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		Phone:        p.Phone(),
		Email:        p.Email(),
		Role:         int(p.Role()),
		PasswordHash: p.PasswordHash(),
		CreatedAt:    p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a profile domain aggregate using RestoreProfile.
func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return profile.RestoreProfile(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		profile.Role(dto.Role),
		dto.PasswordHash,
		dto.CreatedAt,
	)
}
