package queries

import (
	"context"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"

	"gorm.io/gorm"
)

// GetMarketplaceStatsQueryHandler computes the admin overview with two
// aggregate queries, one over loads and one over profiles.
type GetMarketplaceStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetMarketplaceStatsQueryHandler creates a handler for marketplace
// overview queries.
func NewGetMarketplaceStatsQueryHandler(db *gorm.DB) GetMarketplaceStatsQueryHandler {
	return GetMarketplaceStatsQueryHandler{db: db}
}

// Handle executes the overview query.
func (h GetMarketplaceStatsQueryHandler) Handle(
	ctx context.Context,
	query GetMarketplaceStatsQuery,
) (GetMarketplaceStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	var stats GetMarketplaceStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(price) FILTER (WHERE status = ?), 0)
		FROM loads
	`, load.Open, load.Assigned, load.InProgress, load.Completed, load.Completed).Row()
	if err := row.Scan(
		&stats.OpenLoads,
		&stats.AssignedLoads,
		&stats.InProgressLoads,
		&stats.CompletedLoads,
		&stats.CompletedValue,
	); err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE role = ?),
			COUNT(*) FILTER (WHERE role = ?)
		FROM profiles
	`, profile.RoleShipper, profile.RoleDriver).Row()
	if err := row.Scan(&stats.TotalShippers, &stats.TotalDrivers); err != nil {
		return GetMarketplaceStatsQueryResponse{}, err
	}

	return stats, nil
}
