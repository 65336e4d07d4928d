package queries

import (
	"errors"

	"loadboard/internal/pkg/guard"
)

// ErrGetMarketplaceStatsQueryIsNotConstructed is returned when validating a zero-value query.
var ErrGetMarketplaceStatsQueryIsNotConstructed = errors.New(
	"GetMarketplaceStatsQuery must be created via NewGetMarketplaceStatsQuery constructor",
)

// GetMarketplaceStatsQuery retrieves the admin overview: load counts per
// lifecycle status, participant totals and realized marketplace value.
type GetMarketplaceStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMarketplaceStatsQuery creates a query for the marketplace overview.
// This is a parameterless query.
func NewGetMarketplaceStatsQuery() GetMarketplaceStatsQuery {
	return GetMarketplaceStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMarketplaceStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketplaceStatsQueryIsNotConstructed)
}

// GetMarketplaceStatsQueryResponse is the marketplace overview snapshot.
// CompletedValue is the sum of the prices of all completed loads, in rupees.
type GetMarketplaceStatsQueryResponse struct {
	OpenLoads       int64
	AssignedLoads   int64
	InProgressLoads int64
	CompletedLoads  int64
	TotalShippers   int64
	TotalDrivers    int64
	CompletedValue  int64
}
