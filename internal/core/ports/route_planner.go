package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
)

// RoutePlan is a driving route between a load's pickup and drop cities.
// Geometry is a GeoJSON LineString coordinate list in [lng, lat] order,
// ready for a map widget.
type RoutePlan struct {
	Pickup          kernel.GeoPoint
	Drop            kernel.GeoPoint
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        [][2]float64
}

// RoutePlanner resolves city names to coordinates and computes a driving
// route between them. Implementations talk to an external mapping service;
// callers treat any failure as "no preview available", not as a hard error.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, pickupCity, dropCity string) (RoutePlan, error)
}
