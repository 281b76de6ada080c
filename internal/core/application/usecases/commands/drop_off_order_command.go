package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDropOffOrderCommandIsNotConstructed = errors.New(
	"DropOffOrderCommand must be created via NewDropOffOrderCommand constructor",
)

// DropOffOrderCommand reports a delivery as done. The drop-off and
// collection times and the note are optional details for the audit trail.
type DropOffOrderCommand struct {
	jobTarget
	dropOffAt   *time.Time
	collectedAt *time.Time
	note        string

	guard guard.ConstructorGuard
}

func NewDropOffOrderCommand(
	orderID kernel.ObjectID,
	caller *identity.Identity,
	dropOffAt, collectedAt *time.Time,
	note string,
) (DropOffOrderCommand, error) {
	target, err := newJobTarget(orderID, caller)
	if err != nil {
		return DropOffOrderCommand{}, err
	}
	return DropOffOrderCommand{
		jobTarget:   target,
		dropOffAt:   dropOffAt,
		collectedAt: collectedAt,
		note:        strings.TrimSpace(note),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DropOffOrderCommand) Validate() error {
	return c.guard.Validate(ErrDropOffOrderCommandIsNotConstructed)
}

// DropOffAt returns nil when the client did not say when the parcel was delivered.
func (c DropOffOrderCommand) DropOffAt() *time.Time { return c.dropOffAt }

func (c DropOffOrderCommand) CollectedAt() *time.Time { return c.collectedAt }

func (c DropOffOrderCommand) Note() string { return c.note }
