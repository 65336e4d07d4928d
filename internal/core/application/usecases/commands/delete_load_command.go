package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrDeleteLoadCommandIsNotConstructed is returned when validating a zero-value command.
var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand represents a shipper withdrawing their own open load.
type DeleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLoadCommand creates a command for a shipper to delete a load.
func NewDeleteLoadCommand(loadID, shipperID kernel.UUID) (DeleteLoadCommand, error) {
	cmd := DeleteLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setShipperID(shipperID),
	); err != nil {
		return DeleteLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being deleted.
func (c DeleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// ShipperID returns the acting shipper's identifier.
func (c DeleteLoadCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *DeleteLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *DeleteLoadCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
