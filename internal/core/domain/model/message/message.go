package message

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// DropOffMarker starts every drop-off message body. Statistics count
// completed deliveries by looking for it.
const DropOffMarker = "Drop off by"

var (
	// ErrMessageIsNotConstructed is returned when a Message was not created via NewMessage or RestoreMessage.
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
	// ErrBodyIsRequired is returned for a blank message body.
	ErrBodyIsRequired = errs.NewValueIsRequiredError("body")
)

// Model names the kind of backend record a message is attached to.
type Model string

const (
	ModelOrder   Model = "order"
	ModelPicking Model = "picking"
)

func (m Model) Validate() error {
	if m != ModelOrder && m != ModelPicking {
		return errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%q is not a tracked model", string(m)))
	}
	return nil
}

// Message is one entry of the backend audit trail (chatter) of an order or
// picking. Messages are append-only.
type Message struct {
	id       kernel.UUID
	model    Model
	resID    kernel.ObjectID
	authorID kernel.ObjectID
	body     string
	date     time.Time

	guard guard.ConstructorGuard
}

// NewMessage creates a message authored now by authorID on the record
// (model, resID).
func NewMessage(model Model, resID, authorID kernel.ObjectID, body string, date time.Time) (*Message, error) {
	return RestoreMessage(kernel.NewUUID(), model, resID, authorID, body, date)
}

// RestoreMessage rebuilds a message read from the backend store.
func RestoreMessage(
	id kernel.UUID,
	model Model,
	resID, authorID kernel.ObjectID,
	body string,
	date time.Time,
) (*Message, error) {
	var bodyErr error
	if strings.TrimSpace(body) == "" {
		bodyErr = ErrBodyIsRequired
	}
	if err := errors.Join(id.Validate(), model.Validate(), resID.Validate(), authorID.Validate(), bodyErr); err != nil {
		return nil, err
	}
	return &Message{
		id:       id,
		model:    model,
		resID:    resID,
		authorID: authorID,
		body:     body,
		date:     date.UTC(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the message was built by a constructor.
func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID { return m.id }

func (m *Message) Model() Model { return m.model }

func (m *Message) ResID() kernel.ObjectID { return m.resID }

func (m *Message) AuthorID() kernel.ObjectID { return m.authorID }

func (m *Message) Body() string { return m.body }

func (m *Message) Date() time.Time { return m.date }

// IsDropOff reports whether the message records a drop-off.
func (m *Message) IsDropOff() bool {
	return strings.Contains(m.body, DropOffMarker)
}
