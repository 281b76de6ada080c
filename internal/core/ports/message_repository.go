package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"
)

// MessageRepository appends to and reads the backend audit trail.
type MessageRepository interface {
	// Append stores a message. A failure must abort the surrounding unit of work.
	Append(ctx context.Context, m *message.Message) error

	// ListByAuthorSince returns the messages on records of the given model
	// authored by authorID at or after since, oldest first.
	ListByAuthorSince(
		ctx context.Context,
		authorID kernel.ObjectID,
		model message.Model,
		since time.Time,
	) ([]*message.Message, error)
}
