package commands

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the sign-up email is taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// SignUpCommandHandler handles the business logic for participant registration.
// Creates the profile aggregate (hashing the password) and persists it,
// translating the store's uniqueness violation into a business error.
//
// Example:
//
//	handler := NewSignUpCommandHandler(uowFactory)
//	cmd, _ := NewSignUpCommand(kernel.NewUUID(), "Ravi", "", "ravi@example.com", "secret-pass", "shipper")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrEmailAlreadyRegistered) {
//	    // tell the caller to sign in instead
//	}
type SignUpCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewSignUpCommandHandler creates a handler for registration operations.
func NewSignUpCommandHandler(uowFactory ProfileUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-up command.
func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newProfile, err := profile.NewProfile(
		cmd.ProfileID(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Email(),
		cmd.Password(),
		cmd.Role(),
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

	if err = uow.ProfileRepository().Add(ctx, newProfile); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return ErrEmailAlreadyRegistered
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
