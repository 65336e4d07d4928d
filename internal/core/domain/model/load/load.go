package load

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created
	// through NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")

	// ErrDriverIsNotAssignee is returned when a driver attempts to act on a
	// load that is assigned to someone else (or to no one).
	ErrDriverIsNotAssignee = errors.New("driver is not the assignee of this load")

	// ErrShipperIsNotOwner is returned when a shipper attempts to act on a
	// load they did not post.
	ErrShipperIsNotOwner = errors.New("shipper is not the owner of this load")

	// ErrLoadIsNotOpen is returned when an operation that requires an Open
	// load (deletion) is attempted after a driver has committed to it.
	ErrLoadIsNotOpen = errors.New("load is no longer open")
)

var pickupTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Cargo is a value object describing what is being shipped and at what price.
//
// Weight is in tonnes and must be positive. Volume is in cubic feet and
// optional (nil when the shipper did not provide it). VehicleType is the
// free-text vehicle requirement ("Tata 407", "Container 20ft", ...). Price
// is the offered amount in rupees and must be positive. Description is
// optional free text.
type Cargo struct { //nolint:recvcheck //using for validation
	weightTonnes float64
	volumeCuFt   *float64
	vehicleType  string
	price        int64
	description  string

	guard guard.ConstructorGuard
}

// ErrCargoIsNotConstructed is returned when validating a zero-value Cargo.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// NewCargo creates a validated Cargo value.
func NewCargo(weightTonnes float64, volumeCuFt *float64, vehicleType string, price int64, description string) (Cargo, error) {
	cargo := Cargo{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cargo.setWeight(weightTonnes),
		cargo.setVolume(volumeCuFt),
		cargo.setVehicleType(vehicleType),
		cargo.setPrice(price),
	); err != nil {
		return Cargo{}, err
	}

	cargo.description = strings.TrimSpace(description)
	return cargo, nil
}

// Validate ensures the Cargo was created through NewCargo.
func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// WeightTonnes returns the cargo weight in tonnes.
func (c Cargo) WeightTonnes() float64 { return c.weightTonnes }

// VolumeCuFt returns the cargo volume in cubic feet, or nil if not provided.
func (c Cargo) VolumeCuFt() *float64 { return c.volumeCuFt }

// VehicleType returns the required vehicle type.
func (c Cargo) VehicleType() string { return c.vehicleType }

// Price returns the offered price in rupees.
func (c Cargo) Price() int64 { return c.price }

// Description returns the optional cargo description.
func (c Cargo) Description() string { return c.description }

func (c *Cargo) setWeight(weightTonnes float64) error {
	if weightTonnes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%g is not greater than 0", weightTonnes))
	}
	c.weightTonnes = weightTonnes
	return nil
}

func (c *Cargo) setVolume(volumeCuFt *float64) error {
	if volumeCuFt != nil && *volumeCuFt <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid",
			fmt.Errorf("%g is not greater than 0", *volumeCuFt))
	}
	c.volumeCuFt = volumeCuFt
	return nil
}

func (c *Cargo) setVehicleType(vehicleType string) error {
	if strings.TrimSpace(vehicleType) == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	c.vehicleType = strings.TrimSpace(vehicleType)
	return nil
}

func (c *Cargo) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is not greater than 0", price))
	}
	c.price = price
	return nil
}

// Schedule is a value object holding the agreed pickup date and time.
// The time is kept as a display string ("HH:MM") exactly as the shipper
// entered it; the date carries the calendar day.
type Schedule struct { //nolint:recvcheck //using for validation
	pickupDate time.Time
	pickupTime string

	guard guard.ConstructorGuard
}

// ErrScheduleIsNotConstructed is returned when validating a zero-value Schedule.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")

// NewSchedule creates a validated Schedule.
func NewSchedule(pickupDate time.Time, pickupTime string) (Schedule, error) {
	schedule := Schedule{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		schedule.setPickupDate(pickupDate),
		schedule.setPickupTime(pickupTime),
	); err != nil {
		return Schedule{}, err
	}

	return schedule, nil
}

// Validate ensures the Schedule was created through NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// PickupDate returns the pickup calendar day.
func (s Schedule) PickupDate() time.Time { return s.pickupDate }

// PickupTime returns the pickup time as entered, "HH:MM".
func (s Schedule) PickupTime() string { return s.pickupTime }

func (s *Schedule) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickup date")
	}
	s.pickupDate = pickupDate
	return nil
}

func (s *Schedule) setPickupTime(pickupTime string) error {
	if !pickupTimePattern.MatchString(pickupTime) {
		return errs.NewValueIsInvalidErrorWithCause("pickup time is invalid",
			fmt.Errorf("%q is not in HH:MM form", pickupTime))
	}
	s.pickupTime = pickupTime
	return nil
}

// Load is the aggregate root of the marketplace: a shipment posted by a
// shipper, to be fulfilled by a driver.
//
// Load maintains these invariants:
//   - identity, route, cargo, schedule and owning shipper are set at
//     construction and validated there
//   - the owning shipper never changes after creation
//   - a driver is assigned if and only if the status has left Open
//   - status transitions follow the Status state machine; Completed is terminal
//
// The struct uses private fields, so a Load can only change through its
// lifecycle methods, each of which re-validates the acting party.
type Load struct {
	id           kernel.UUID
	shipperID    kernel.UUID
	driverID     *kernel.UUID
	pickup       kernel.Location
	drop         kernel.Location
	cargo        Cargo
	schedule     Schedule
	contactPhone string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewLoad creates an Open load posted by the given shipper.
//
// All parts are validated; any combination of failures is reported via a
// joined error. The load starts with no driver, status Open, and creation
// and update timestamps set to the current time.
func NewLoad(
	id kernel.UUID,
	shipperID kernel.UUID,
	pickup kernel.Location,
	drop kernel.Location,
	cargo Cargo,
	schedule Schedule,
	contactPhone string,
) (*Load, error) {
	now := time.Now().UTC()
	l := &Load{
		contactPhone:  strings.TrimSpace(contactPhone),
		status:        Open,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setShipperID(shipperID),
		l.setRoute(pickup, drop),
		l.setCargo(cargo),
		l.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a Load from persistence without re-running the
// creation-time defaults. It validates the same construction invariants as
// NewLoad plus the status/driver consistency rule, guarding against corrupt
// rows.
func RestoreLoad(
	id kernel.UUID,
	shipperID kernel.UUID,
	driverID *kernel.UUID,
	pickup kernel.Location,
	drop kernel.Location,
	cargo Cargo,
	schedule Schedule,
	contactPhone string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Load, error) {
	l := &Load{
		contactPhone:  strings.TrimSpace(contactPhone),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setShipperID(shipperID),
		l.setRoute(pickup, drop),
		l.setCargo(cargo),
		l.setSchedule(schedule),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		copied := *driverID
		l.driverID = &copied
	}
	l.status = status

	return l, nil
}

// Validate ensures the Load was created through a constructor.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by identity.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID { return l.id }

// ShipperID returns the owning shipper's identifier. It never changes.
func (l *Load) ShipperID() kernel.UUID { return l.shipperID }

// DriverID returns the assigned driver's identifier, or nil while Open.
func (l *Load) DriverID() *kernel.UUID { return l.driverID }

// Pickup returns the pickup location.
func (l *Load) Pickup() kernel.Location { return l.pickup }

// Drop returns the drop location.
func (l *Load) Drop() kernel.Location { return l.drop }

// Cargo returns the cargo attributes.
func (l *Load) Cargo() Cargo { return l.cargo }

// Schedule returns the pickup schedule.
func (l *Load) Schedule() Schedule { return l.schedule }

// ContactPhone returns the optional shipper contact phone. The API surface
// only exposes it to the assigned driver.
func (l *Load) ContactPhone() string { return l.contactPhone }

// Status returns the current lifecycle status.
func (l *Load) Status() Status { return l.status }

// CreatedAt returns the creation timestamp.
func (l *Load) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (l *Load) UpdatedAt() time.Time { return l.updatedAt }

// Assign commits a driver to the load.
//
// Valid only while Open; the conditional write in the repository is what
// arbitrates concurrent attempts, this method enforces the local invariant.
// The driver may be self-selected (accept) or chosen by the owning shipper
// (assign); both paths go through here.
func (l *Load) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Assign()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.driverID = &driverID
	l.touch()
	return nil
}

// Start marks the trip as started by the assigned driver.
// Only the assigned driver may start, and only from Assigned.
func (l *Load) Start(driverID kernel.UUID) error {
	if err := l.validateAssignee(driverID); err != nil {
		return err
	}

	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.touch()
	return nil
}

// Complete marks the load as delivered by the assigned driver.
// Only the assigned driver may complete, from Assigned (the "end trip" fast
// path) or InProgress. Completed is terminal.
func (l *Load) Complete(driverID kernel.UUID) error {
	if err := l.validateAssignee(driverID); err != nil {
		return err
	}

	newStatus, err := l.status.Complete()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.touch()
	return nil
}

// CanBeDeletedBy reports whether the given shipper may delete the load.
// Deletion is only permitted to the owner and only while Open, so a load a
// driver has committed to can never silently disappear.
func (l *Load) CanBeDeletedBy(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	if !l.shipperID.IsEqual(shipperID) {
		return ErrShipperIsNotOwner
	}
	if l.status != Open {
		return ErrLoadIsNotOpen
	}
	return nil
}

// IsOwnedBy reports whether the given shipper posted the load.
func (l *Load) IsOwnedBy(shipperID kernel.UUID) bool {
	return l.shipperID.IsEqual(shipperID)
}

func (l *Load) validateAssignee(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if l.driverID == nil || !l.driverID.IsEqual(driverID) {
		return ErrDriverIsNotAssignee
	}
	return nil
}

func (l *Load) touch() {
	l.updatedAt = time.Now().UTC()
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	l.shipperID = shipperID
	return nil
}

func (l *Load) setRoute(pickup, drop kernel.Location) error {
	if err := errors.Join(pickup.Validate(), drop.Validate()); err != nil {
		return err
	}
	l.pickup = pickup
	l.drop = drop
	return nil
}

func (l *Load) setCargo(cargo Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}
	l.cargo = cargo
	return nil
}

func (l *Load) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	l.schedule = schedule
	return nil
}
