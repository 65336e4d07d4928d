package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// CompleteLoadCommandHandler handles the assigned driver ending the trip.
//
// Completion is idempotent from the driver's point of view: ending a trip
// that is already completed (a retried request, or a race with an identical
// request) matches zero rows and is treated as success, since the desired
// state already holds.
type CompleteLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompleteLoadCommandHandler creates a handler for load completion operations.
func NewCompleteLoadCommandHandler(
	uowFactory LoadUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) CompleteLoadCommandHandler {
	return CompleteLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(slog.String("component", "complete-load-handler")),
	}
}

// Handle processes the completion command with a conditional write accepting
// both active statuses: Assigned covers the "end trip" fast path, InProgress
// the started trip.
func (h CompleteLoadCommandHandler) Handle(ctx context.Context, cmd CompleteLoadCommand) error {
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

	if err = target.Complete(cmd.DriverID()); err != nil {
		if errors.Is(err, load.ErrDriverIsNotAssignee) {
			return ErrNotAssignedDriver
		}
		// Already completed by an identical earlier request.
		if target.Status().IsTerminal() {
			return nil
		}
		return err
	}

	matched, err := loadRepo.UpdateWhereStatus(ctx, target, load.Assigned, load.InProgress)
	if err != nil {
		return err
	}
	if !matched {
		// The row left the active statuses between read and write. The only
		// reachable terminal is Completed, so the desired state holds.
		h.logger.Info("completion matched zero rows, treating as already completed",
			slog.String("load_id", cmd.LoadID().String()))
		return nil
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, target)
	return nil
}
