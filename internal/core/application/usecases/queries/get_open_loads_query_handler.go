package queries

import (
	"context"

	"loadboard/internal/core/domain/model/load"

	"gorm.io/gorm"
)

// GetOpenLoadsQueryHandler retrieves the open-load board from the database.
// City filters are case-insensitive; results come newest first so fresh
// postings surface at the top.
type GetOpenLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenLoadsQueryHandler creates a handler for open-load board queries.
func NewGetOpenLoadsQueryHandler(db *gorm.DB) GetOpenLoadsQueryHandler {
	return GetOpenLoadsQueryHandler{db: db}
}

// Handle executes the query. The shipper's contact phone is blanked on every
// returned view: it is only shared with a driver once they commit to the load.
func (h GetOpenLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenLoadsQuery,
) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `SELECT ` + loadViewColumns + ` FROM loads WHERE status = ?`
	args := []any{load.Open}

	if query.PickupCity() != "" {
		sqlQuery += ` AND LOWER(pickup_city) = LOWER(?)`
		args = append(args, query.PickupCity())
	}
	if query.DropCity() != "" {
		sqlQuery += ` AND LOWER(drop_city) = LOWER(?)`
		args = append(args, query.DropCity())
	}
	if query.MinPrice() != nil {
		sqlQuery += ` AND price >= ?`
		args = append(args, *query.MinPrice())
	}

	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := collectLoadViews(rows)
	if err != nil {
		return nil, err
	}

	for i := range views {
		views[i].ContactPhone = ""
	}

	return views, nil
}
