package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// SignUpCommand represents a request to register a new marketplace participant.
// The role string is parsed eagerly so malformed requests fail before any
// transaction is opened.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID
	name      string
	phone     string
	email     string
	password  string
	role      profile.Role

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a command to register a participant.
// Validates that the profile ID is valid, name/email/password are present,
// and the role is one of the known marketplace roles.
func NewSignUpCommand(profileID kernel.UUID, name, phone, email, password, role string) (SignUpCommand, error) {
	cmd := SignUpCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// ProfileID returns the unique identifier for the new profile.
func (c SignUpCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// Name returns the participant's display name.
func (c SignUpCommand) Name() string {
	return c.name
}

// Phone returns the optional contact phone.
func (c SignUpCommand) Phone() string {
	return c.phone
}

// Email returns the sign-in email.
func (c SignUpCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It is hashed by the profile
// constructor and never persisted.
func (c SignUpCommand) Password() string {
	return c.password
}

// Role returns the parsed marketplace role.
func (c SignUpCommand) Role() profile.Role {
	return c.role
}

func (c *SignUpCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}

func (c *SignUpCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignUpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *SignUpCommand) setRole(role string) error {
	parsed, err := profile.ParseRole(role)
	if err != nil {
		return err
	}

	c.role = parsed
	return nil
}
