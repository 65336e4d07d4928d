package queries

import (
	"context"
	"log/slog"

	"loadboard/internal/core/ports"

	"gorm.io/gorm"
)

// GetRouteQueryHandler previews the driving route for a load.
//
// The route planner is a display-only collaborator: when it fails (network,
// quota, unknown city) the handler logs the cause and returns the textual
// fallback, never an error. Only a missing load is an error.
type GetRouteQueryHandler struct {
	db      *gorm.DB
	planner ports.RoutePlanner
	logger  *slog.Logger
}

// NewGetRouteQueryHandler creates a handler for route preview queries.
func NewGetRouteQueryHandler(
	db *gorm.DB, planner ports.RoutePlanner, logger *slog.Logger,
) GetRouteQueryHandler {
	return GetRouteQueryHandler{
		db:      db,
		planner: planner,
		logger:  logger.With(slog.String("component", "route-query-handler")),
	}
}

// Handle executes the route preview query.
func (h GetRouteQueryHandler) Handle(
	ctx context.Context,
	query GetRouteQuery,
) (GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pickup_city,
			drop_city
		FROM loads
		WHERE id = ?
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return GetRouteQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetRouteQueryResponse{}, err
		}
		return GetRouteQueryResponse{}, ErrLoadNotFound
	}

	var pickupCity, dropCity string
	if err = rows.Scan(&pickupCity, &dropCity); err != nil {
		return GetRouteQueryResponse{}, err
	}

	plan, err := h.planner.PlanRoute(ctx, pickupCity, dropCity)
	if err != nil {
		h.logger.Warn("route planning failed, returning fallback",
			slog.String("load_id", query.LoadID().String()),
			slog.String("pickup_city", pickupCity),
			slog.String("drop_city", dropCity),
			slog.Any("error", err))

		return GetRouteQueryResponse{
			PickupCity: pickupCity,
			DropCity:   dropCity,
			Available:  false,
			Message:    routeUnavailableMessage,
		}, nil
	}

	pickup := plan.Pickup
	drop := plan.Drop
	return GetRouteQueryResponse{
		PickupCity:      pickupCity,
		DropCity:        dropCity,
		Available:       true,
		Pickup:          &pickup,
		Drop:            &drop,
		DistanceMeters:  plan.DistanceMeters,
		DurationSeconds: plan.DurationSeconds,
		Geometry:        plan.Geometry,
	}, nil
}
