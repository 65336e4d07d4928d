package kernel

import (
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

// Bounds for WGS84 coordinates.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// ErrLocationIsNotConstructed is returned when validating a Location that was
// not created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// ErrCityIsRequired is returned when a Location is created without a city name.
var ErrCityIsRequired = errs.NewValueIsRequiredError("city")

// GeoPoint is an immutable WGS84 coordinate pair.
//
// The zero value is invalid; use NewGeoPoint. Coordinates are validated
// against the latitude/longitude bounds at construction time, so a
// constructed GeoPoint is always a real point on the globe.
//
// Example:
//
//	pt, err := kernel.NewGeoPoint(18.5204, 73.8567) // Pune
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating both coordinates against the
// WGS84 bounds.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrGeoPointIsNotConstructed for the zero value.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer as "lat,lng" with six decimal places,
// the precision used by the routing collaborator.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.latitude, p.longitude)
}

// IsEqual compares two points for equality. Both points must be properly
// constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// Location is a pickup or drop point of a load: a required city name plus
// optional coordinates. The city is what the marketplace filters and
// displays; coordinates exist purely for the mapping collaborator and their
// absence never blocks a lifecycle operation.
type Location struct { //nolint:recvcheck //using for validation
	city  string
	point *GeoPoint
	guard guard.ConstructorGuard
}

// NewLocation creates a Location. The city must be non-blank; point may be
// nil when no coordinates were captured.
func NewLocation(city string, point *GeoPoint) (Location, error) {
	if strings.TrimSpace(city) == "" {
		return Location{}, ErrCityIsRequired
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return Location{}, err
		}
	}

	return Location{
		city:  strings.TrimSpace(city),
		point: point,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// City returns the city name.
func (l Location) City() string {
	return l.city
}

// Point returns the coordinates, or nil when none were captured.
func (l Location) Point() *GeoPoint {
	return l.point
}

// String implements fmt.Stringer.
func (l Location) String() string {
	if l.point != nil {
		return fmt.Sprintf("%s (%s)", l.city, l.point)
	}
	return l.city
}
