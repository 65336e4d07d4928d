package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrGetMatchingDriversQueryIsNotConstructed is returned when validating a zero-value query.
var ErrGetMatchingDriversQueryIsNotConstructed = errors.New(
	"GetMatchingDriversQuery must be created via NewGetMatchingDriversQuery constructor",
)

// GetMatchingDriversQuery suggests drivers for a shipper's own open load.
type GetMatchingDriversQuery struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMatchingDriversQuery creates a driver suggestion query.
func NewGetMatchingDriversQuery(loadID, shipperID kernel.UUID) (GetMatchingDriversQuery, error) {
	if err := errors.Join(loadID.Validate(), shipperID.Validate()); err != nil {
		return GetMatchingDriversQuery{}, err
	}

	return GetMatchingDriversQuery{
		loadID:    loadID,
		shipperID: shipperID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMatchingDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetMatchingDriversQueryIsNotConstructed)
}

// LoadID returns the load to suggest drivers for.
func (q GetMatchingDriversQuery) LoadID() kernel.UUID {
	return q.loadID
}

// ShipperID returns the requesting shipper's identifier.
func (q GetMatchingDriversQuery) ShipperID() kernel.UUID {
	return q.shipperID
}

// MatchedDriver is one suggested driver. The phone is included so the shipper
// can reach out before assigning.
type MatchedDriver struct {
	ID    kernel.UUID
	Name  string
	Phone string
}
