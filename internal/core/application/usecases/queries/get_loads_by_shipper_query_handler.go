package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLoadsByShipperQueryHandler retrieves a shipper's postings across the
// whole lifecycle, newest first.
type GetLoadsByShipperQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadsByShipperQueryHandler creates a handler for shipper load queries.
func NewGetLoadsByShipperQueryHandler(db *gorm.DB) GetLoadsByShipperQueryHandler {
	return GetLoadsByShipperQueryHandler{db: db}
}

// Handle executes the query. The owner sees every field of their own loads,
// including the contact phone they entered.
func (h GetLoadsByShipperQueryHandler) Handle(
	ctx context.Context,
	query GetLoadsByShipperQuery,
) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `SELECT ` + loadViewColumns + ` FROM loads WHERE shipper_id = ?`
	args := []any{query.ShipperID().Bytes()}

	if query.Status() != nil {
		sqlQuery += ` AND status = ?`
		args = append(args, *query.Status())
	}

	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoadViews(rows)
}
