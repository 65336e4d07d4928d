package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/guard"
)

// ErrGetLoadsByShipperQueryIsNotConstructed is returned when validating a zero-value query.
var ErrGetLoadsByShipperQueryIsNotConstructed = errors.New(
	"GetLoadsByShipperQuery must be created via NewGetLoadsByShipperQuery constructor",
)

// GetLoadsByShipperQuery lists a shipper's own postings, optionally narrowed
// to one lifecycle status.
type GetLoadsByShipperQuery struct { //nolint:recvcheck //using for validation
	shipperID kernel.UUID
	status    *load.Status

	guard guard.ConstructorGuard
}

// NewGetLoadsByShipperQuery creates a query for a shipper's own loads.
func NewGetLoadsByShipperQuery(shipperID kernel.UUID, status *load.Status) (GetLoadsByShipperQuery, error) {
	if err := shipperID.Validate(); err != nil {
		return GetLoadsByShipperQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetLoadsByShipperQuery{}, err
		}
	}

	return GetLoadsByShipperQuery{
		shipperID: shipperID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadsByShipperQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadsByShipperQueryIsNotConstructed)
}

// ShipperID returns the owning shipper's identifier.
func (q GetLoadsByShipperQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

// Status returns the status filter, or nil for all statuses.
func (q GetLoadsByShipperQuery) Status() *load.Status {
	return q.status
}
