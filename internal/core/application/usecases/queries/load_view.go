package queries

import (
	"database/sql"
	"errors"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/google/uuid"
)

var (
	// ErrLoadNotFound is returned when the requested load does not exist.
	ErrLoadNotFound = errors.New("load not found")

	// ErrNotLoadOwner is returned when a shipper queries a load posted by
	// someone else.
	ErrNotLoadOwner = errors.New("load is owned by another shipper")

	// ErrLoadNotOpen is returned when an open-load-only query targets a load
	// a driver has already committed to.
	ErrLoadNotOpen = errors.New("load is no longer open")
)

// LoadView is the read-side projection of a load row, shared by the listing
// queries. ContactPhone is populated only for readers entitled to it; the
// open-loads listing blanks it.
type LoadView struct {
	ID           kernel.UUID
	ShipperID    kernel.UUID
	DriverID     *kernel.UUID
	PickupCity   string
	PickupPoint  *kernel.GeoPoint
	DropCity     string
	DropPoint    *kernel.GeoPoint
	WeightTonnes float64
	VolumeCuFt   *float64
	VehicleType  string
	Price        int64
	Description  string
	PickupDate   time.Time
	PickupTime   string
	ContactPhone string
	Status       load.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// loadViewColumns is the column list every load listing query selects, in the
// order scanLoadView consumes them.
const loadViewColumns = `
	id, shipper_id, driver_id,
	pickup_city, pickup_lat, pickup_lng,
	drop_city, drop_lat, drop_lng,
	weight_tonnes, volume_cu_ft, vehicle_type, price, description,
	pickup_date, pickup_time, contact_phone, status, created_at, updated_at`

func scanLoadView(rows *sql.Rows) (LoadView, error) {
	var (
		view                                           LoadView
		id, shipperID                                  uuid.UUID
		driverID                                       uuid.NullUUID
		pickupLat, pickupLng, dropLat, dropLng, volume sql.NullFloat64
		status                                         int
	)

	if err := rows.Scan(
		&id, &shipperID, &driverID,
		&view.PickupCity, &pickupLat, &pickupLng,
		&view.DropCity, &dropLat, &dropLng,
		&view.WeightTonnes, &volume, &view.VehicleType, &view.Price, &view.Description,
		&view.PickupDate, &view.PickupTime, &view.ContactPhone, &status, &view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return LoadView{}, err
	}

	loadID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoadView{}, err
	}
	view.ID = loadID

	ownerID, err := kernel.UUIDFromBytes(shipperID[:])
	if err != nil {
		return LoadView{}, err
	}
	view.ShipperID = ownerID

	if driverID.Valid {
		dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return LoadView{}, dErr
		}
		view.DriverID = &dID
	}

	if view.PickupPoint, err = nullPoint(pickupLat, pickupLng); err != nil {
		return LoadView{}, err
	}
	if view.DropPoint, err = nullPoint(dropLat, dropLng); err != nil {
		return LoadView{}, err
	}

	if volume.Valid {
		v := volume.Float64
		view.VolumeCuFt = &v
	}
	view.Status = load.Status(status)

	return view, nil
}

func collectLoadViews(rows *sql.Rows) ([]LoadView, error) {
	views := make([]LoadView, 0)
	for rows.Next() {
		view, err := scanLoadView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func nullPoint(lat, lng sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lat.Valid || !lng.Valid {
		return nil, nil
	}
	pt, err := kernel.NewGeoPoint(lat.Float64, lng.Float64)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// toAggregate reconstructs the domain aggregate from the projection, for the
// few read-side operations that run domain logic over a fetched row.
func (v LoadView) toAggregate() (*load.Load, error) {
	pickup, err := kernel.NewLocation(v.PickupCity, v.PickupPoint)
	if err != nil {
		return nil, err
	}
	drop, err := kernel.NewLocation(v.DropCity, v.DropPoint)
	if err != nil {
		return nil, err
	}
	cargo, err := load.NewCargo(v.WeightTonnes, v.VolumeCuFt, v.VehicleType, v.Price, v.Description)
	if err != nil {
		return nil, err
	}
	schedule, err := load.NewSchedule(v.PickupDate, v.PickupTime)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(
		v.ID, v.ShipperID, v.DriverID,
		pickup, drop, cargo, schedule,
		v.ContactPhone, v.Status, v.CreatedAt, v.UpdatedAt,
	)
}
