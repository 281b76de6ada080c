package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/message"
)

// CancelJobCommandHandler clears the assignee of the caller's picking.
type CancelJobCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelJobCommandHandler(uowFactory OrderUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h CancelJobCommandHandler) Handle(ctx context.Context, command CancelJobCommand) error {
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

	if err = p.ReleaseJob(caller.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	body := message.JobCancelledBody(caller.DisplayName(), command.Reason())
	if err = recordOnJob(ctx, messageRepo, o, p, caller.ID(), body, h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
