package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

var (
	// ErrNotLoadOwner is returned when a shipper acts on a load posted by
	// someone else.
	ErrNotLoadOwner = errors.New("load is owned by another shipper")

	// ErrDriverNotFound is returned when the chosen driver does not exist.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrNotADriver is returned when the chosen profile does not hold the
	// driver role.
	ErrNotADriver = errors.New("chosen profile is not a driver")
)

// AssignDriverCommandHandler handles a shipper selecting a driver for their
// own open load. Ownership is checked before the transition, and the
// conditional write additionally requires the row to still be Open, so a
// concurrent driver acceptance wins cleanly.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
func NewAssignDriverCommandHandler(
	uowFactory UoWFactory, publisher ports.EventPublisher, logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(slog.String("component", "assign-driver-handler")),
	}
}

// Handle processes the assignment command.
// Verifies the acting shipper owns the load and the chosen profile holds the
// driver role, then performs the same conditional Open→Assigned write as
// acceptance.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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
	profileRepo := uow.ProfileRepository()

	target, err := loadRepo.Get(ctx, cmd.LoadID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrLoadNotFound
	}
	if err != nil {
		return err
	}

	if !target.IsOwnedBy(cmd.ShipperID()) {
		return ErrNotLoadOwner
	}

	driver, err := profileRepo.Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDriverNotFound
	}
	if err != nil {
		return err
	}
	if driver.Role() != profile.RoleDriver {
		return ErrNotADriver
	}

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
