package commands_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignUpCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewSignUpCommand(id, "Ravi Kumar", "+91 90000 00000", "ravi@example.com", "secret-pass", "shipper")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProfileID())
	assert.Equal(t, "Ravi Kumar", cmd.Name())
	assert.Equal(t, "+91 90000 00000", cmd.Phone())
	assert.Equal(t, "ravi@example.com", cmd.Email())
	assert.Equal(t, "secret-pass", cmd.Password())
	assert.Equal(t, profile.RoleShipper, cmd.Role())
}

func TestNewSignUpCommand_InvalidProfileID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewSignUpCommand(invalidID, "Ravi", "", "ravi@example.com", "secret-pass", "driver")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSignUpCommand_MissingFields(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewSignUpCommand(id, "", "", "", "", "driver")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}

func TestNewSignUpCommand_UnknownRole(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewSignUpCommand(id, "Ravi", "", "ravi@example.com", "secret-pass", "superuser")
	require.Error(t, err)
}

func TestSignUpCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.SignUpCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrSignUpCommandIsNotConstructed)
}
