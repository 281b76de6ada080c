package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/message"
)

// DropOffOrderCommandHandler marks the caller's picking as done.
//
// A drop-off message is always written, stamped with the reported drop-off
// time or the current time; collection and note messages only when given.
type DropOffOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewDropOffOrderCommandHandler(uowFactory OrderUoWFactory) DropOffOrderCommandHandler {
	return DropOffOrderCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h DropOffOrderCommandHandler) Handle(ctx context.Context, command DropOffOrderCommand) error {
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

	if err = p.DropOff(caller.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	now := h.now()
	name := caller.DisplayName()

	dropOffAt := now
	if command.DropOffAt() != nil {
		dropOffAt = *command.DropOffAt()
	}
	bodies := []string{message.DropOffBody(name, dropOffAt)}
	if command.CollectedAt() != nil {
		bodies = append(bodies, message.CollectedBody(name, *command.CollectedAt()))
	}
	if command.Note() != "" {
		bodies = append(bodies, message.NoteBody(name, command.Note()))
	}

	for _, body := range bodies {
		if err = recordOnJob(ctx, messageRepo, o, p, caller.ID(), body, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
