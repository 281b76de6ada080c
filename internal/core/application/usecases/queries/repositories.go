// Package queries contains read operations. Queries open a unit of work
// acting as the caller so the backend's visibility rules apply, read, and
// roll back: they never commit.
package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

type (
	// ReadUoW is the subset of a unit of work used by queries.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		OrderRepository() ports.OrderRepository
		MessageRepository() ports.MessageRepository
	}

	ReadUoWFactory interface {
		CreateAs(actor kernel.ObjectID) ReadUoW
	}
)
