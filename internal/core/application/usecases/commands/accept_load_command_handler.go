package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

var (
	// ErrLoadNotFound is returned when the target load does not exist.
	ErrLoadNotFound = errors.New("load not found")

	// ErrLoadNoLongerAvailable is returned when a driver tries to take a load
	// that another actor committed to first. This is the expected outcome of
	// losing an acceptance race, not a system failure.
	ErrLoadNoLongerAvailable = errors.New("load is no longer available")
)

// AcceptLoadCommandHandler handles a driver taking an open load.
//
// Arbitration of concurrent acceptances belongs to the conditional write:
// the handler reads the load, applies the transition locally, and persists it
// only if the row is still Open. Zero matched rows means another driver (or
// the shipper assigning directly) won, which surfaces as
// ErrLoadNoLongerAvailable.
type AcceptLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAcceptLoadCommandHandler creates a handler for load acceptance operations.
func NewAcceptLoadCommandHandler(
	uowFactory LoadUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) AcceptLoadCommandHandler {
	return AcceptLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(slog.String("component", "accept-load-handler")),
	}
}

// Handle processes the acceptance command.
func (h AcceptLoadCommandHandler) Handle(ctx context.Context, cmd AcceptLoadCommand) error {
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

	// A load read in a non-open state cannot transition; report it the same
	// way as losing the write race.
	if err = target.Assign(cmd.DriverID()); err != nil {
		return ErrLoadNoLongerAvailable
	}

	matched, err := loadRepo.UpdateWhereStatus(ctx, target, load.Open)
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
