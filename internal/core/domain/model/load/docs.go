// Package load provides the domain entities and business logic of the
// marketplace's central aggregate: the Load posted by a shipper and
// fulfilled by a driver.
//
// The package includes:
//   - Load: the aggregate root managing identity, route, cargo, schedule,
//     parties, and the lifecycle
//   - Status: a state machine enforcing open -> assigned -> in_progress ->
//     completed (with the assigned -> completed fast path)
//   - Cargo, Schedule: validated value objects for the shipment details
//
// Key business rules:
//   - a load is owned by the shipper who posted it, forever
//   - a driver is assigned if and only if the load has left open
//   - assignment happens exactly once, by driver accept or shipper selection
//   - only the assigned driver may start or complete the trip
//   - only the owner may delete, and only while the load is still open
//   - completed is terminal
//
// The aggregate enforces these rules locally; the repository's conditional
// writes enforce them atomically against concurrent actors.
package load
