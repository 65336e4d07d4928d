// Package token issues and verifies the bearer credentials that authorize
// every store request. Tokens are stateless HS256 JWTs carrying the profile
// id as subject and the marketplace role as a custom claim; sign-out is a
// client-side token discard.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned for any token that fails signature, expiry or
// claim checks. Callers treat it uniformly as an authorization denial.
var ErrTokenInvalid = errors.New("session token is invalid")

// Claims is the JWT payload of a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues and parses session tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner creates a Signer. A non-positive ttl defaults to 24h.
func NewSigner(secret, issuer string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Issue signs a token for the given profile id and role.
func (s *Signer) Issue(subject, role string) (token string, expiresAt time.Time, err error) {
	if subject == "" {
		return "", time.Time{}, errors.New("subject is empty")
	}

	now := time.Now()
	expiresAt = now.Add(s.ttl)

	c := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies a token string and returns its claims.
// Any verification failure is reported as ErrTokenInvalid.
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuedAt())
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if s.issuer != "" {
		if iss, issErr := claims.GetIssuer(); issErr != nil || iss != s.issuer {
			return nil, ErrTokenInvalid
		}
	}
	return claims, nil
}
