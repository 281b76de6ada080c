package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/message"
)

// AcceptOrderCommandHandler assigns an order's picking to the caller.
//
// The picking must be vacant: nobody or the bot holds it. The check runs
// on the row read inside the caller's transaction, right before the write,
// so of two drivers racing for the same order only one commits.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotFound):
//	case errors.Is(err, picking.ErrAlreadyAssigned):
//	case errors.Is(err, picking.ErrAlreadyAssignedToCaller):
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
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

	if err = p.Accept(caller.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	body := message.AcceptedBody(caller.DisplayName())
	if err = recordOnJob(ctx, messageRepo, o, p, caller.ID(), body, h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
