package queries_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignInQuery_Valid(t *testing.T) {
	q, err := queries.NewSignInQuery("Ravi@Example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", q.Email(), "email is normalized to lower case")
	assert.Equal(t, "secret123", q.Password())
	assert.NoError(t, q.Validate())
}

func TestNewSignInQuery_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"blank email", "  ", "secret123"},
		{"empty email", "", "secret123"},
		{"empty password", "ravi@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewSignInQuery(tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestSignInQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.SignInQuery
	assert.ErrorIs(t, q.Validate(), queries.ErrSignInQueryIsNotConstructed)
}
