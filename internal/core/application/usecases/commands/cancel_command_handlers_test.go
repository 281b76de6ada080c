package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cancelHandler func(ctx context.Context, factory commands.OrderUoWFactory, caller *identity.Identity) error

func cancelOrder(ctx context.Context, factory commands.OrderUoWFactory, caller *identity.Identity) error {
	cmd, err := commands.NewCancelOrderCommand(orderID, caller, "customer unreachable")
	if err != nil {
		return err
	}
	return commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)
}

func cancelJob(ctx context.Context, factory commands.OrderUoWFactory, caller *identity.Identity) error {
	cmd, err := commands.NewCancelJobCommand(orderID, caller, "flat tyre")
	if err != nil {
		return err
	}
	return commands.NewCancelJobCommandHandler(factory).Handle(ctx, cmd)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	job := newJob(t, picking.Assigned, identity.UserAssignee(alice.ID()))

	factory, uow, orderRepo, messageRepo := lifecycleMocks(ctx, alice)
	mock.InOrder(
		orderRepo.On("Get", ctx, orderID).Return(job, nil).Once(),
		orderRepo.On("Update", ctx, job).Return(nil).Once(),
		messageRepo.On("Append", ctx, mock.Anything).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	require.NoError(t, cancelOrder(ctx, factory, alice))

	p, _ := job.Picking()
	assert.Equal(t, order.Cancelled, job.State())
	assert.Equal(t, picking.Cancelled, p.State())
	assert.Equal(t, []string{
		"Order cancelled by Alice. Reason: customer unreachable",
		"Order cancelled by Alice. Reason: customer unreachable",
	}, bodiesOf(messageRepo.appended))
	uow.AssertExpectations(t)
}

func TestCancelJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	job := newJob(t, picking.Assigned, identity.UserAssignee(alice.ID()))

	factory, uow, orderRepo, messageRepo := lifecycleMocks(ctx, alice)
	mock.InOrder(
		orderRepo.On("Get", ctx, orderID).Return(job, nil).Once(),
		orderRepo.On("Update", ctx, job).Return(nil).Once(),
		messageRepo.On("Append", ctx, mock.Anything).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	require.NoError(t, cancelJob(ctx, factory, alice))

	p, _ := job.Picking()
	assert.Equal(t, order.Sale, job.State())
	assert.Equal(t, picking.Assigned, p.State())
	assert.True(t, p.Assignee().IsNone())
	assert.Equal(t, picking.Unassigned, job.DerivedState())
	assert.Equal(t, []string{
		"Job cancelled by Alice. Reason: flat tyre",
		"Job cancelled by Alice. Reason: flat tyre",
	}, bodiesOf(messageRepo.appended))
	uow.AssertExpectations(t)
}

func TestCancelHandlers_NotAssigneeInEveryState(t *testing.T) {
	handlers := map[string]cancelHandler{"cancel-order": cancelOrder, "cancel-job": cancelJob}
	states := []picking.State{picking.Empty, picking.Waiting, picking.Confirmed, picking.Assigned, picking.Done, picking.Cancelled}
	assignees := map[string]identity.Assignee{
		"vacant":  identity.NoAssignee(),
		"bot":     identity.BotAssignee(botID),
		"another": identity.UserAssignee(bob.ID()),
	}

	for handlerName, handle := range handlers {
		for _, state := range states {
			for assigneeName, assignee := range assignees {
				t.Run(handlerName+"/"+string(state)+"/"+assigneeName, func(t *testing.T) {
					ctx := t.Context()
					job := newJob(t, state, assignee)
					factory, uow, orderRepo, messageRepo := lifecycleMocks(ctx, alice)
					orderRepo.On("Get", ctx, orderID).Return(job, nil).Once()

					err := handle(ctx, factory, alice)

					require.ErrorIs(t, err, picking.ErrNotAssignee)
					messageRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
					uow.AssertNotCalled(t, "Commit", mock.Anything)
				})
			}
		}
	}
}

func TestCancelHandlers_NotCancellableOutsideAssignedState(t *testing.T) {
	handlers := map[string]cancelHandler{"cancel-order": cancelOrder, "cancel-job": cancelJob}
	states := []picking.State{picking.Empty, picking.Waiting, picking.Confirmed, picking.Done, picking.Cancelled}

	for handlerName, handle := range handlers {
		for _, state := range states {
			t.Run(handlerName+"/"+string(state), func(t *testing.T) {
				ctx := t.Context()
				job := newJob(t, state, identity.UserAssignee(alice.ID()))
				factory, uow, orderRepo, _ := lifecycleMocks(ctx, alice)
				orderRepo.On("Get", ctx, orderID).Return(job, nil).Once()

				err := handle(ctx, factory, alice)

				require.ErrorIs(t, err, picking.ErrNotCancellable)
				uow.AssertNotCalled(t, "Commit", mock.Anything)
			})
		}
	}
}
