package commands_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	target := newOpenLoad(shipperID)

	cmd, err := commands.NewAcceptLoadCommand(target.ID(), driverID)
	require.NoError(t, err)

	repo := new(MockLoadRepository)
	uow := new(MockLoadUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("UpdateWhereStatus", mock.Anything, target, []load.Status{load.Open}).
			Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishLoadStatusChanged", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewAcceptLoadCommandHandler(factory, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Assigned, target.Status())
	require.NotNil(t, target.DriverID())
	assert.True(t, target.DriverID().IsEqual(driverID))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAcceptLoadCommandHandler_Handle_LoadNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptLoadCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockLoadRepository)
	repo.On("Get", mock.Anything, cmd.LoadID()).
		Return(nil, errs.NewObjectNotFoundError("load", cmd.LoadID())).Once()

	uow := new(MockLoadUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptLoadCommandHandler(factory, new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrLoadNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptLoadCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	target := newAssignedLoad(shipperID, kernel.NewUUID())

	cmd, err := commands.NewAcceptLoadCommand(target.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockLoadRepository)
	repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()

	uow := new(MockLoadUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptLoadCommandHandler(factory, new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrLoadNoLongerAvailable)
	repo.AssertNotCalled(t, "UpdateWhereStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptLoadCommandHandler_Handle_LostWriteRace(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	target := newOpenLoad(shipperID)

	cmd, err := commands.NewAcceptLoadCommand(target.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockLoadRepository)
	repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
	repo.On("UpdateWhereStatus", mock.Anything, target, []load.Status{load.Open}).
		Return(false, nil).Once()

	uow := new(MockLoadUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewAcceptLoadCommandHandler(factory, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrLoadNoLongerAvailable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishLoadStatusChanged", mock.Anything, mock.Anything)
}

func TestAcceptLoadCommandHandler_Handle_ValidationError(t *testing.T) {
	var cmd commands.AcceptLoadCommand
	h := commands.NewAcceptLoadCommandHandler(new(MockLoadUoWFactory), new(MockEventPublisher), testLogger())
	err := h.Handle(t.Context(), cmd)
	assert.ErrorIs(t, err, commands.ErrAcceptLoadCommandIsNotConstructed)
}
