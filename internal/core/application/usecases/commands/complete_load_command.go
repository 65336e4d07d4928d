package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrCompleteLoadCommandIsNotConstructed is returned when validating a zero-value command.
var ErrCompleteLoadCommandIsNotConstructed = errors.New(
	"CompleteLoadCommand must be created via NewCompleteLoadCommand constructor",
)

// CompleteLoadCommand represents the assigned driver ending the trip.
type CompleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteLoadCommand creates a command for a driver to complete a load.
func NewCompleteLoadCommand(loadID, driverID kernel.UUID) (CompleteLoadCommand, error) {
	cmd := CompleteLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CompleteLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being completed.
func (c CompleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DriverID returns the acting driver's identifier.
func (c CompleteLoadCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *CompleteLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *CompleteLoadCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
