package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrAcceptLoadCommandIsNotConstructed is returned when validating a zero-value command.
var ErrAcceptLoadCommandIsNotConstructed = errors.New(
	"AcceptLoadCommand must be created via NewAcceptLoadCommand constructor",
)

// AcceptLoadCommand represents a driver's request to take an open load.
type AcceptLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptLoadCommand creates a command for a driver to accept a load.
func NewAcceptLoadCommand(loadID, driverID kernel.UUID) (AcceptLoadCommand, error) {
	cmd := AcceptLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptLoadCommand) Validate() error {
	return c.guard.Validate(ErrAcceptLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being accepted.
func (c AcceptLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DriverID returns the accepting driver's identifier.
func (c AcceptLoadCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *AcceptLoadCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
