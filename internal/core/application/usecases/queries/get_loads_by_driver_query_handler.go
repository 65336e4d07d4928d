package queries

import (
	"context"

	"loadboard/internal/core/domain/model/load"

	"gorm.io/gorm"
)

// GetLoadsByDriverQueryHandler retrieves the loads assigned to a driver,
// ordered by pickup date so the next trip comes first.
type GetLoadsByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadsByDriverQueryHandler creates a handler for driver load queries.
func NewGetLoadsByDriverQueryHandler(db *gorm.DB) GetLoadsByDriverQueryHandler {
	return GetLoadsByDriverQueryHandler{db: db}
}

// Handle executes the query. The assigned driver is entitled to the shipper's
// contact phone, so the views carry it.
func (h GetLoadsByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetLoadsByDriverQuery,
) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+loadViewColumns+`
		FROM loads
		WHERE driver_id = ? AND status IN (?, ?, ?)
		ORDER BY pickup_date
	`, query.DriverID().Bytes(), load.Assigned, load.InProgress, load.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLoadViews(rows)
}
