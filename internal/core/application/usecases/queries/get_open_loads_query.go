package queries

import (
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

// ErrGetOpenLoadsQueryIsNotConstructed is returned when validating a zero-value query.
var ErrGetOpenLoadsQueryIsNotConstructed = errors.New(
	"GetOpenLoadsQuery must be created via NewGetOpenLoadsQuery constructor",
)

// GetOpenLoadsQuery lists the loads any driver may still accept. All filters
// are optional: blank cities and a nil minimum price mean no filtering.
type GetOpenLoadsQuery struct { //nolint:recvcheck //using for validation
	pickupCity string
	dropCity   string
	minPrice   *int64

	guard guard.ConstructorGuard
}

// NewGetOpenLoadsQuery creates a query for the open-load board.
func NewGetOpenLoadsQuery(pickupCity, dropCity string, minPrice *int64) (GetOpenLoadsQuery, error) {
	if minPrice != nil && *minPrice < 0 {
		return GetOpenLoadsQuery{}, errs.NewValueIsInvalidErrorWithCause("minimum price is invalid",
			fmt.Errorf("%d is negative", *minPrice))
	}

	return GetOpenLoadsQuery{
		pickupCity: strings.TrimSpace(pickupCity),
		dropCity:   strings.TrimSpace(dropCity),
		minPrice:   minPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenLoadsQueryIsNotConstructed)
}

// PickupCity returns the pickup city filter, or "" for no filter.
func (q GetOpenLoadsQuery) PickupCity() string {
	return q.pickupCity
}

// DropCity returns the drop city filter, or "" for no filter.
func (q GetOpenLoadsQuery) DropCity() string {
	return q.dropCity
}

// MinPrice returns the minimum price filter, or nil for no filter.
func (q GetOpenLoadsQuery) MinPrice() *int64 {
	return q.minPrice
}
