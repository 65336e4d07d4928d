package commands_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartTripCommand_Valid(t *testing.T) {
	loadID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewStartTripCommand(loadID, driverID)

	require.NoError(t, err)
	assert.Equal(t, loadID, cmd.LoadID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.NoError(t, cmd.Validate())
}

func TestNewStartTripCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewStartTripCommand(kernel.UUID{}, kernel.NewUUID())
	assert.Error(t, err)

	_, err = commands.NewStartTripCommand(kernel.NewUUID(), kernel.UUID{})
	assert.Error(t, err)
}

func TestStartTripCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.StartTripCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrStartTripCommandIsNotConstructed)
}
