// Package loadrepo provides data transfer objects and mapping functions for load persistence.
// This package implements the repository pattern for the load domain aggregate, handling
// the conversion between domain entities and database representations.
package loadrepo

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Maps load domain entities to relational database tables with proper indexing
// for efficient querying by status, shipper and driver assignment.
type LoadDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ShipperID    uuid.UUID   `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID  `gorm:"type:uuid;index"`
	Pickup       LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Drop         LocationDTO `gorm:"embedded;embeddedPrefix:drop_"`
	WeightTonnes float64
	VolumeCuFt   *float64
	VehicleType  string
	Price        int64
	Description  string
	ContactPhone string
	PickupDate   time.Time
	PickupTime   string
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for load entities.
// Overrides GORM's default naming convention to use "loads".
func (LoadDTO) TableName() string {
	return "loads"
}

// LocationDTO represents an embedded pickup or drop point within the load table.
// The city is always present; coordinates are stored only when they were captured.
type LocationDTO struct {
	City string
	Lat  *float64
	Lng  *float64
}

// fromDomain converts a load domain aggregate to its database representation.
// Maps all load attributes including optional driver assignment.
func fromDomain(l *load.Load) LoadDTO {
	var driverID *uuid.UUID
	if id := l.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return LoadDTO{
		ID:           l.ID().Bytes(),
		ShipperID:    l.ShipperID().Bytes(),
		DriverID:     driverID,
		Pickup:       locationFromDomain(l.Pickup()),
		Drop:         locationFromDomain(l.Drop()),
		WeightTonnes: l.Cargo().WeightTonnes(),
		VolumeCuFt:   l.Cargo().VolumeCuFt(),
		VehicleType:  l.Cargo().VehicleType(),
		Price:        l.Cargo().Price(),
		Description:  l.Cargo().Description(),
		ContactPhone: l.ContactPhone(),
		PickupDate:   l.Schedule().PickupDate(),
		PickupTime:   l.Schedule().PickupTime(),
		Status:       int(l.Status()),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}

func locationFromDomain(loc kernel.Location) LocationDTO {
	dto := LocationDTO{City: loc.City()}
	if pt := loc.Point(); pt != nil {
		lat := pt.Latitude()
		lng := pt.Longitude()
		dto.Lat = &lat
		dto.Lng = &lng
	}
	return dto
}

// toDomain converts a database DTO to a load domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreLoad.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	pickup, err := locationToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	drop, err := locationToDomain(dto.Drop)
	if err != nil {
		return nil, err
	}

	cargo, err := load.NewCargo(dto.WeightTonnes, dto.VolumeCuFt, dto.VehicleType, dto.Price, dto.Description)
	if err != nil {
		return nil, err
	}

	schedule, err := load.NewSchedule(dto.PickupDate, dto.PickupTime)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(
		id,
		shipperID,
		driverID,
		pickup,
		drop,
		cargo,
		schedule,
		dto.ContactPhone,
		load.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		pt, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if err != nil {
			return kernel.Location{}, err
		}
		point = &pt
	}

	return kernel.NewLocation(dto.City, point)
}
