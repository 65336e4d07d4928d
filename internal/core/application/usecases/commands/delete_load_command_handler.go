package commands

import (
	"context"
	"errors"

	"loadboard/internal/pkg/errs"
)

// ErrLoadNotDeletable is returned when the load exists but is no longer
// deletable: either a driver has committed to it, or it belongs to another
// shipper.
var ErrLoadNotDeletable = errors.New("load can no longer be deleted")

// DeleteLoadCommandHandler handles a shipper withdrawing an open load.
//
// The delete is conditional on ownership and Open status in a single
// statement, mirroring the lifecycle writes: a load a driver has committed
// to can never silently disappear under them.
type DeleteLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewDeleteLoadCommandHandler creates a handler for load deletion operations.
func NewDeleteLoadCommandHandler(uowFactory LoadUoWFactory) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. A zero-row delete on an existing
// load distinguishes between the load having left Open (or a foreign owner)
// and the load not existing at all.
func (h DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) error {
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

	deleted, err := loadRepo.DeleteOpenLoad(ctx, cmd.LoadID(), cmd.ShipperID())
	if err != nil {
		return err
	}

	if !deleted {
		_, err = loadRepo.Get(ctx, cmd.LoadID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrLoadNotFound
		}
		if err != nil {
			return err
		}
		return ErrLoadNotDeletable
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
