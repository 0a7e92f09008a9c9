package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/archive"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewArchiveOrderCommand(aggregate.ID(), order.ReasonClientCancelled, "changed mind", actorID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockArchivalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		archiveRepo.On("Add", mock.Anything, mock.AnythingOfType("*archive.ArchivedOrder")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockArchivalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveOrderCommandHandler(factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.True(t, snapshot.OriginalOrderID().IsEqual(aggregate.ID()))
	require.Equal(t, order.ReasonClientCancelled, snapshot.Reason())
	require.Equal(t, "changed mind", snapshot.Notes())
	require.Equal(t, order.Pending, snapshot.StatusAtArchival())
	require.Equal(t, order.Cancelled, aggregate.Status())
	require.NotNil(t, aggregate.Cancellation())

	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestArchiveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ArchiveOrderCommand{} // not constructed properly
	factory := new(MockArchivalUoWFactory)
	h := commands.NewArchiveOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestArchiveOrderCommandHandler_Handle_ShippedOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newExpediatedOrder(t, "ECO-1")
	cmd, err := commands.NewArchiveOrderCommand(aggregate.ID(), order.ReasonClientCancelled, "", kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockArchivalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockArchivalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	archiveRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	require.Equal(t, order.Sent, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestArchiveOrderCommandHandler_Handle_ArchiveAddErrorAbortsCancel(t *testing.T) {
	ctx := t.Context()
	aggregate := newConfirmedOrder(t)
	cmd, err := commands.NewArchiveOrderCommand(aggregate.ID(), order.ReasonNoResponse, "", kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockArchivalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		archiveRepo.On("Add", mock.Anything, mock.AnythingOfType("*archive.ArchivedOrder")).
			Return(archive.ErrAlreadyArchived).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockArchivalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, archive.ErrAlreadyArchived)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	require.Equal(t, order.Confirmed, aggregate.Status())
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestArchiveOrderCommandHandler_Handle_UpdateErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewArchiveOrderCommand(aggregate.ID(), order.ReasonNoResponse, "", kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockArchivalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		archiveRepo.On("Add", mock.Anything, mock.AnythingOfType("*archive.ArchivedOrder")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).
			Return(errs.NewConcurrentModificationError("order", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockArchivalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Commit", ctx)
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestArchiveOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewArchiveOrderCommand(aggregate.ID(), order.ReasonClientCancelled, "", kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockArchivalUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		archiveRepo.On("Add", mock.Anything, mock.AnythingOfType("*archive.ArchivedOrder")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockArchivalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
