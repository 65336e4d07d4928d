// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and geographic values (GeoPoint coordinates and the
// city-plus-coordinates Location used for pickup and drop points).
//
// All kernel types are immutable value objects. Their zero values are
// invalid and every instance must be created through a constructor, which
// is enforced with the constructor-guard pattern.
package kernel
