// Package commands contains business operations that modify backend state.
// Every command follows the same pattern: validation, a unit of work acting
// as the caller, the domain change, the audit trail, commit.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	AccessKeyRepoFactory interface {
		AccessKeyRepository() ports.AccessKeyRepository
	}

	// OrderUoW is used by the job lifecycle commands: each one changes an
	// order and writes its audit trail in the same transaction.
	//
	// Example:
	//   uow := factory.CreateAs(caller.ID())
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   messageRepo := uow.MessageRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MessageRepoFactory
	}

	// OrderUoWFactory opens order units of work acting as a backend user.
	OrderUoWFactory interface {
		CreateAs(actor kernel.ObjectID) OrderUoW
	}

	// AccessKeyUoW manages transactions for API key maintenance.
	AccessKeyUoW interface {
		TxManager
		AccessKeyRepoFactory
	}

	AccessKeyUoWFactory interface {
		Create() AccessKeyUoW
	}
)
