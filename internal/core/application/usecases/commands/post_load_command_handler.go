package commands

import (
	"context"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"
)

// PostLoadCommandHandler handles the business logic for posting loads.
// Creates the load aggregate in Open status, persists it, and announces the
// new load on the event stream.
type PostLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewPostLoadCommandHandler creates a handler for load posting operations.
func NewPostLoadCommandHandler(
	uowFactory LoadUoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) PostLoadCommandHandler {
	return PostLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(slog.String("component", "post-load-handler")),
	}
}

// Handle processes the load posting command. The load starts Open with no
// driver; the event is published only after the transaction commits.
func (h PostLoadCommandHandler) Handle(ctx context.Context, cmd PostLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newLoad, err := load.NewLoad(
		cmd.LoadID(),
		cmd.ShipperID(),
		cmd.Pickup(),
		cmd.Drop(),
		cmd.Cargo(),
		cmd.Schedule(),
		cmd.ContactPhone(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, newLoad); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, newLoad)
	return nil
}
