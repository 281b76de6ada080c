package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/message"
)

// CancelOrderCommandHandler cancels the order and its picking. Only the
// assignee of a picking in the assigned state may do so.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	caller := command.Caller()

	uow := h.uowFactory.CreateAs(caller.ID())
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	messageRepo := uow.MessageRepository()

	o, p, err := loadJob(ctx, orderRepo, command.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(caller.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	body := message.OrderCancelledBody(caller.DisplayName(), command.Reason())
	if err = recordOnJob(ctx, messageRepo, o, p, caller.ID(), body, h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
