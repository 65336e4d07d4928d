package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrStartTripCommandIsNotConstructed is returned when validating a zero-value command.
var ErrStartTripCommandIsNotConstructed = errors.New(
	"StartTripCommand must be created via NewStartTripCommand constructor",
)

// StartTripCommand represents the assigned driver reporting the trip started.
type StartTripCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTripCommand creates a command for a driver to start a trip.
func NewStartTripCommand(loadID, driverID kernel.UUID) (StartTripCommand, error) {
	cmd := StartTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDriverID(driverID),
	); err != nil {
		return StartTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTripCommand) Validate() error {
	return c.guard.Validate(ErrStartTripCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being started.
func (c StartTripCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DriverID returns the acting driver's identifier.
func (c StartTripCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartTripCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *StartTripCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
