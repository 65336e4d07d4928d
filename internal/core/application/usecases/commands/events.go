package commands

import (
	"context"
	"log/slog"
	"time"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
)

// publishStatusChanged emits a lifecycle event after a committed transition.
// Failures are logged and swallowed: event delivery never undoes a commit.
func publishStatusChanged(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, l *load.Load) {
	event := ports.LoadStatusChanged{
		LoadID:     l.ID(),
		Status:     l.Status(),
		ShipperID:  l.ShipperID(),
		DriverID:   l.DriverID(),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishLoadStatusChanged(ctx, event); err != nil {
		logger.Warn("failed to publish load status event",
			slog.String("load_id", l.ID().String()),
			slog.String("status", l.Status().String()),
			slog.Any("error", err))
	}
}
