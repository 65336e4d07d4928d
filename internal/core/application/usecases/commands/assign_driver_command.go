package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrAssignDriverCommandIsNotConstructed is returned when validating a zero-value command.
var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a shipper selecting a driver for their own
// open load, the shipper-side counterpart of AcceptLoadCommand.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	shipperID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command for a shipper to assign a driver.
func NewAssignDriverCommand(loadID, shipperID, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setShipperID(shipperID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being assigned.
func (c AssignDriverCommand) LoadID() kernel.UUID {
	return c.loadID
}

// ShipperID returns the acting shipper's identifier.
func (c AssignDriverCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// DriverID returns the chosen driver's identifier.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *AssignDriverCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
