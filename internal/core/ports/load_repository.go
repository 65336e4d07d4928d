package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
//
// All lifecycle mutations go through the conditional methods: a write is
// accepted only if the row's current status still matches the expected
// value at write time. A false result is not a failure, it is the expected
// outcome of losing a race to a concurrent actor.
type LoadRepository interface {
	// Add persists a new load aggregate.
	Add(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// UpdateWhereStatus persists the aggregate's current state, conditioned
	// on the stored row still being in one of the expected statuses.
	// Returns false (and no error) when zero rows matched: the caller lost
	// the race and must re-fetch.
	UpdateWhereStatus(ctx context.Context, aggregate *load.Load, expected ...load.Status) (bool, error)

	// DeleteOpenLoad removes the load, conditioned on it still being open
	// and owned by the given shipper. Returns false when zero rows matched.
	DeleteOpenLoad(ctx context.Context, id, shipperID kernel.UUID) (bool, error)
}
