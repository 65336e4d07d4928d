package queries

import (
	"errors"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

// ErrSignInQueryIsNotConstructed is returned when validating a zero-value query.
var ErrSignInQueryIsNotConstructed = errors.New(
	"SignInQuery must be created via NewSignInQuery constructor",
)

// SignInQuery authenticates a profile by email and password and, on success,
// yields a session token.
type SignInQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewSignInQuery creates a sign-in query. The email is normalized to lower
// case the same way profiles store it.
func NewSignInQuery(email, password string) (SignInQuery, error) {
	q := SignInQuery{guard: guard.NewConstructorGuard()}

	q.email = strings.ToLower(strings.TrimSpace(email))
	if q.email == "" {
		return SignInQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return SignInQuery{}, errs.NewValueIsRequiredError("password")
	}
	q.password = password

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SignInQuery) Validate() error {
	return q.guard.Validate(ErrSignInQueryIsNotConstructed)
}

// Email returns the normalized sign-in email.
func (q SignInQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q SignInQuery) Password() string {
	return q.password
}

// SignInQueryResponse carries the issued session token and the signed-in
// profile's display data.
type SignInQueryResponse struct {
	Token     string
	ExpiresAt time.Time
	ProfileID kernel.UUID
	Name      string
	Phone     string
	Email     string
	Role      profile.Role
}
