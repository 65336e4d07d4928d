package ports

import (
	"context"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
)

// LoadStatusChanged is emitted after a load transitions to a new lifecycle
// status. DriverID is nil for transitions that happen before assignment.
type LoadStatusChanged struct {
	LoadID     kernel.UUID
	Status     load.Status
	ShipperID  kernel.UUID
	DriverID   *kernel.UUID
	OccurredAt time.Time
}

// EventPublisher delivers domain events to downstream consumers.
// Publishing is best-effort: handlers call it after the owning transaction
// commits and treat failures as non-fatal.
type EventPublisher interface {
	PublishLoadStatusChanged(ctx context.Context, event LoadStatusChanged) error
}

// MarketplaceSnapshot is a periodic census of the board, emitted by the
// stats snapshot job for dashboards and alerting pipelines.
type MarketplaceSnapshot struct {
	OpenLoads       int64
	AssignedLoads   int64
	InProgressLoads int64
	CompletedLoads  int64
	TotalShippers   int64
	TotalDrivers    int64
	CompletedValue  int64
	TakenAt         time.Time
}

// SnapshotPublisher delivers marketplace snapshots to downstream consumers.
type SnapshotPublisher interface {
	PublishMarketplaceSnapshot(ctx context.Context, snapshot MarketplaceSnapshot) error
}
