package queries

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. The two cases are deliberately indistinguishable so the endpoint
// cannot be used to probe which emails are registered.
var ErrInvalidCredentials = errors.New("email or password is incorrect")

// SignInQueryHandler verifies credentials against the stored bcrypt hash and
// issues a session token.
type SignInQueryHandler struct {
	db     *gorm.DB
	signer *token.Signer
}

// NewSignInQueryHandler creates a handler for sign-in queries.
func NewSignInQueryHandler(db *gorm.DB, signer *token.Signer) SignInQueryHandler {
	return SignInQueryHandler{db: db, signer: signer}
}

// Handle executes the sign-in query.
func (h SignInQueryHandler) Handle(
	ctx context.Context,
	query SignInQuery,
) (SignInQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SignInQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email,
			role,
			password_hash
		FROM profiles
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return SignInQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return SignInQueryResponse{}, err
		}
		return SignInQueryResponse{}, ErrInvalidCredentials
	}

	var (
		id           uuid.UUID
		name         string
		phone        string
		email        string
		role         int
		passwordHash string
	)
	if err = rows.Scan(&id, &name, &phone, &email, &role, &passwordHash); err != nil {
		return SignInQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return SignInQueryResponse{}, ErrInvalidCredentials
	}

	profileID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return SignInQueryResponse{}, err
	}

	profileRole := profile.Role(role)
	signed, expiresAt, err := h.signer.Issue(profileID.String(), profileRole.String())
	if err != nil {
		return SignInQueryResponse{}, err
	}

	return SignInQueryResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		ProfileID: profileID,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Role:      profileRole,
	}, nil
}
