package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrGetLoadsByDriverQueryIsNotConstructed is returned when validating a zero-value query.
var ErrGetLoadsByDriverQueryIsNotConstructed = errors.New(
	"GetLoadsByDriverQuery must be created via NewGetLoadsByDriverQuery constructor",
)

// GetLoadsByDriverQuery lists the loads a driver has committed to: current
// work and trip history alike.
type GetLoadsByDriverQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadsByDriverQuery creates a query for a driver's committed loads.
func NewGetLoadsByDriverQuery(driverID kernel.UUID) (GetLoadsByDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetLoadsByDriverQuery{}, err
	}

	return GetLoadsByDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadsByDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadsByDriverQueryIsNotConstructed)
}

// DriverID returns the driver's identifier.
func (q GetLoadsByDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
