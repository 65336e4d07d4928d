// Package services provides domain services that operate across aggregates.
//
// It currently contains the DriverMatcher capability and its single
// RandomMatcher implementation, the deliberately trivial stand-in for the
// marketplace's advertised load/driver matching.
package services
