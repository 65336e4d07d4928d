package profile

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrProfileIsNotConstructed is returned when a Profile instance was not
	// created through NewProfile or RestoreProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile constructor")

	// ErrPasswordTooShort is returned for passwords under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// Profile is the identity of a marketplace participant. The role fixes which
// view the participant gets; credentials are stored as a bcrypt hash only.
type Profile struct {
	id           kernel.UUID
	name         string
	phone        string
	email        string
	role         Role
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewProfile creates a Profile for a sign-up, hashing the plaintext password
// with bcrypt. The email is normalized to lower case.
func NewProfile(id kernel.UUID, name, phone, email, password string, role Role) (*Profile, error) {
	p := &Profile{
		phone:         strings.TrimSpace(phone),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p.passwordHash = string(hash)

	return p, nil
}

// RestoreProfile reconstructs a Profile from persistence with the stored
// password hash.
func RestoreProfile(
	id kernel.UUID,
	name, phone, email string,
	role Role,
	passwordHash string,
	createdAt time.Time,
) (*Profile, error) {
	p := &Profile{
		phone:         strings.TrimSpace(phone),
		passwordHash:  passwordHash,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Profile was created through a constructor.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p *Profile) Name() string { return p.name }

// Phone returns the optional contact phone.
func (p *Profile) Phone() string { return p.phone }

// Email returns the normalized sign-in email.
func (p *Profile) Email() string { return p.email }

// Role returns the marketplace role.
func (p *Profile) Role() Role { return p.role }

// PasswordHash returns the stored bcrypt hash, for persistence only.
func (p *Profile) PasswordHash() string { return p.passwordHash }

// CreatedAt returns the creation timestamp.
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

// VerifyPassword reports whether the plaintext password matches the stored
// hash. A mismatch is not an error condition; true errors (corrupt hash)
// also report false.
func (p *Profile) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.passwordHash), []byte(password)) == nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = strings.TrimSpace(name)
	return nil
}

func (p *Profile) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", err)
	}
	p.email = email
	return nil
}

func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
