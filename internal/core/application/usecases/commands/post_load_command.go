package commands

import (
	"errors"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

// ErrPostLoadCommandIsNotConstructed is returned when validating a zero-value command.
var ErrPostLoadCommandIsNotConstructed = errors.New(
	"PostLoadCommand must be created via NewPostLoadCommand constructor",
)

// PostLoadCommand represents a shipper's request to post a new load.
//
// The constructor builds the domain value objects eagerly, so every field
// rule (positive weight and price, valid cities, HH:MM pickup time) is
// enforced before a transaction is opened and the handler only composes
// already-valid parts.
type PostLoadCommand struct { //nolint:recvcheck //using for validation
	loadID       kernel.UUID
	shipperID    kernel.UUID
	pickup       kernel.Location
	drop         kernel.Location
	cargo        load.Cargo
	schedule     load.Schedule
	contactPhone string

	guard guard.ConstructorGuard
}

// NewPostLoadCommand creates a command to post a load. Coordinates are
// optional on both ends of the route; everything else follows the load
// field rules.
func NewPostLoadCommand(
	loadID kernel.UUID,
	shipperID kernel.UUID,
	pickupCity string,
	pickupPoint *kernel.GeoPoint,
	dropCity string,
	dropPoint *kernel.GeoPoint,
	weightTonnes float64,
	volumeCuFt *float64,
	vehicleType string,
	price int64,
	description string,
	pickupDate time.Time,
	pickupTime string,
	contactPhone string,
) (PostLoadCommand, error) {
	cmd := PostLoadCommand{
		contactPhone: contactPhone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setShipperID(shipperID),
		cmd.setRoute(pickupCity, pickupPoint, dropCity, dropPoint),
		cmd.setCargo(weightTonnes, volumeCuFt, vehicleType, price, description),
		cmd.setSchedule(pickupDate, pickupTime),
	); err != nil {
		return PostLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostLoadCommand) Validate() error {
	return c.guard.Validate(ErrPostLoadCommandIsNotConstructed)
}

// LoadID returns the unique identifier for the new load.
func (c PostLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// ShipperID returns the posting shipper's identifier.
func (c PostLoadCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

// Pickup returns the validated pickup location.
func (c PostLoadCommand) Pickup() kernel.Location {
	return c.pickup
}

// Drop returns the validated drop location.
func (c PostLoadCommand) Drop() kernel.Location {
	return c.drop
}

// Cargo returns the validated cargo attributes.
func (c PostLoadCommand) Cargo() load.Cargo {
	return c.cargo
}

// Schedule returns the validated pickup schedule.
func (c PostLoadCommand) Schedule() load.Schedule {
	return c.schedule
}

// ContactPhone returns the optional shipper contact phone.
func (c PostLoadCommand) ContactPhone() string {
	return c.contactPhone
}

func (c *PostLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *PostLoadCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}

func (c *PostLoadCommand) setRoute(
	pickupCity string, pickupPoint *kernel.GeoPoint,
	dropCity string, dropPoint *kernel.GeoPoint,
) error {
	pickup, err := kernel.NewLocation(pickupCity, pickupPoint)
	if err != nil {
		return err
	}

	drop, err := kernel.NewLocation(dropCity, dropPoint)
	if err != nil {
		return err
	}

	c.pickup = pickup
	c.drop = drop
	return nil
}

func (c *PostLoadCommand) setCargo(
	weightTonnes float64, volumeCuFt *float64, vehicleType string, price int64, description string,
) error {
	cargo, err := load.NewCargo(weightTonnes, volumeCuFt, vehicleType, price, description)
	if err != nil {
		return err
	}

	c.cargo = cargo
	return nil
}

func (c *PostLoadCommand) setSchedule(pickupDate time.Time, pickupTime string) error {
	schedule, err := load.NewSchedule(pickupDate, pickupTime)
	if err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}
