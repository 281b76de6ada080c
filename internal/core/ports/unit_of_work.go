package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	// Create returns a unit of work running with the service's own backend
	// privileges. Used for authentication and maintenance.
	Create() UnitOfWork

	// CreateAs returns a unit of work acting as the given backend user, so
	// the backend's own access rules apply to every read and write.
	CreateAs(actor kernel.ObjectID) UnitOfWork
}

// UnitOfWork represents one backend transaction.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	IdentityRepository() IdentityRepository
	AccessKeyRepository() AccessKeyRepository
	OrderRepository() OrderRepository
	MessageRepository() MessageRepository
}
