package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrCallerIsRequired is returned when a lifecycle command has no authorized caller.
	ErrCallerIsRequired = errs.NewValueIsRequiredError("caller")
	// ErrReasonIsRequired is returned when a cancellation has a blank reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// jobTarget identifies the order a lifecycle command acts on and who acts.
type jobTarget struct {
	orderID kernel.ObjectID
	caller  *identity.Identity
}

func newJobTarget(orderID kernel.ObjectID, caller *identity.Identity) (jobTarget, error) {
	var callerErr error
	if caller.Validate() != nil {
		callerErr = ErrCallerIsRequired
	}
	if err := errors.Join(orderID.Validate(), callerErr); err != nil {
		return jobTarget{}, err
	}
	return jobTarget{orderID: orderID, caller: caller}, nil
}

func (t jobTarget) OrderID() kernel.ObjectID { return t.orderID }

func (t jobTarget) Caller() *identity.Identity { return t.caller }

// loadJob reads the order and its delivery picking. A missing order and an
// order without picking are both order.ErrOrderNotFound.
func loadJob(ctx context.Context, orders ports.OrderRepository, id kernel.ObjectID) (*order.Order, *picking.Picking, error) {
	o, err := orders.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	p, err := o.Picking()
	if err != nil {
		return nil, nil, err
	}
	return o, p, nil
}

// recordOnJob appends body to the audit trail of both the order and the picking.
func recordOnJob(
	ctx context.Context,
	messages ports.MessageRepository,
	o *order.Order,
	p *picking.Picking,
	author kernel.ObjectID,
	body string,
	at time.Time,
) error {
	targets := []struct {
		model message.Model
		id    kernel.ObjectID
	}{
		{message.ModelOrder, o.ID()},
		{message.ModelPicking, p.ID()},
	}
	for _, target := range targets {
		m, err := message.NewMessage(target.model, target.id, author, body, at)
		if err != nil {
			return err
		}
		if err = messages.Append(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func normalizeReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", ErrReasonIsRequired
	}
	return reason, nil
}
