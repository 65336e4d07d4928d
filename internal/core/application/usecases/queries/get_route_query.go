package queries

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

// ErrGetRouteQueryIsNotConstructed is returned when validating a zero-value query.
var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// routeUnavailableMessage is the textual fallback shown whenever the mapping
// collaborator cannot produce a route. Mapping is display-only; its failures
// never surface as errors.
const routeUnavailableMessage = "route preview unavailable"

// GetRouteQuery previews the driving route between a load's pickup and drop
// cities.
type GetRouteQuery struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteQuery creates a route preview query.
func NewGetRouteQuery(loadID kernel.UUID) (GetRouteQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}

	return GetRouteQuery{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// LoadID returns the load whose route is previewed.
func (q GetRouteQuery) LoadID() kernel.UUID {
	return q.loadID
}

// GetRouteQueryResponse is the route preview. When Available is false the
// Message holds the textual fallback and the geometry is empty.
type GetRouteQueryResponse struct {
	PickupCity      string
	DropCity        string
	Available       bool
	Message         string
	Pickup          *kernel.GeoPoint
	Drop            *kernel.GeoPoint
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        [][2]float64
}
