package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// ErrNotAssignedDriver is returned when a driver acts on a load assigned to
// someone else, or not assigned at all.
var ErrNotAssignedDriver = errors.New("driver is not assigned to this load")

// StartTripCommandHandler handles the assigned driver starting the trip.
// Starting is optional in the lifecycle; completion accepts the Assigned
// fast path for drivers who never report a start.
type StartTripCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewStartTripCommandHandler creates a handler for trip start operations.
func NewStartTripCommandHandler(
	uowFactory LoadUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) StartTripCommandHandler {
	return StartTripCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(slog.String("component", "start-trip-handler")),
	}
}

// Handle processes the trip start command with a conditional
// Assigned→InProgress write.
func (h StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	target, err := loadRepo.Get(ctx, cmd.LoadID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrLoadNotFound
	}
	if err != nil {
		return err
	}

	if err = target.Start(cmd.DriverID()); err != nil {
		if errors.Is(err, load.ErrDriverIsNotAssignee) {
			return ErrNotAssignedDriver
		}
		return ErrLoadNoLongerAvailable
	}

	matched, err := loadRepo.UpdateWhereStatus(ctx, target, load.Assigned)
	if err != nil {
		return err
	}
	if !matched {
		return ErrLoadNoLongerAvailable
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, target)
	return nil
}
