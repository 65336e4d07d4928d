package queries

import (
	"context"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMatchingDriversQueryHandler produces driver suggestions for a shipper's
// open load. The suggestion set comes from the DriverMatcher; the handler only
// enforces that the requester owns the load and that it is still open.
type GetMatchingDriversQueryHandler struct {
	db      *gorm.DB
	matcher services.DriverMatcher
}

// NewGetMatchingDriversQueryHandler creates a handler for driver suggestion
// queries.
func NewGetMatchingDriversQueryHandler(
	db *gorm.DB, matcher services.DriverMatcher,
) GetMatchingDriversQueryHandler {
	return GetMatchingDriversQueryHandler{db: db, matcher: matcher}
}

// Handle executes the suggestion query.
func (h GetMatchingDriversQueryHandler) Handle(
	ctx context.Context,
	query GetMatchingDriversQuery,
) ([]MatchedDriver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	target, err := h.fetchLoad(ctx, query.LoadID())
	if err != nil {
		return nil, err
	}

	if !target.IsOwnedBy(query.ShipperID()) {
		return nil, ErrNotLoadOwner
	}
	if target.Status() != load.Open {
		return nil, ErrLoadNotOpen
	}

	candidates, err := h.fetchDrivers(ctx)
	if err != nil {
		return nil, err
	}

	matched := h.matcher.Match(target, candidates)

	suggestions := make([]MatchedDriver, 0, len(matched))
	for _, driver := range matched {
		suggestions = append(suggestions, MatchedDriver{
			ID:    driver.ID(),
			Name:  driver.Name(),
			Phone: driver.Phone(),
		})
	}

	return suggestions, nil
}

func (h GetMatchingDriversQueryHandler) fetchLoad(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+loadViewColumns+` FROM loads WHERE id = ?`, id.Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrLoadNotFound
	}

	view, err := scanLoadView(rows)
	if err != nil {
		return nil, err
	}

	return view.toAggregate()
}

func (h GetMatchingDriversQueryHandler) fetchDrivers(ctx context.Context) ([]*profile.Profile, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email,
			role,
			password_hash,
			created_at
		FROM profiles
		WHERE role = ?
		ORDER BY name
	`, profile.RoleDriver).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]*profile.Profile, 0)
	for rows.Next() {
		var (
			id                              uuid.UUID
			name, phone, email, hash        string
			role                            int
			createdAt                       time.Time
		)
		if err = rows.Scan(&id, &name, &phone, &email, &role, &hash, &createdAt); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		driver, restoreErr := profile.RestoreProfile(driverID, name, phone, email, profile.Role(role), hash, createdAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		drivers = append(drivers, driver)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
