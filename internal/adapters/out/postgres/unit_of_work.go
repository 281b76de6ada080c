// Package postgres provides the GORM-based Unit of Work over the backend
// record store.
//
// A unit of work is one backend transaction. Units created with CreateAs
// act as a backend user: Begin stores the user id in the transaction-local
// setting dispatch.acting_user_id, which the backend's row security
// policies read. Units created with Create run with the service's own
// privileges and are used for authentication and maintenance only.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, botID)
//	uow := factory.CreateAs(caller.ID())
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	// ...
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/accesskeyrepo"
	"dispatch/internal/adapters/out/postgres/identityrepo"
	"dispatch/internal/adapters/out/postgres/messagerepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// ActingUserSetting is the transaction-local setting naming the backend user
// a unit of work acts as.
const ActingUserSetting = "dispatch.acting_user_id"

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	botID kernel.ObjectID
}

// NewGormUnitOfWorkFactory creates a factory. botID identifies the backend
// user holding unclaimed pickings.
func NewGormUnitOfWorkFactory(db *gorm.DB, botID kernel.ObjectID) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, botID: botID}
}

// Create returns a unit of work with the service's own privileges.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, botID: f.botID}
}

// CreateAs returns a unit of work acting as actor.
func (f *GormUnitOfWorkFactory) CreateAs(actor kernel.ObjectID) ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, botID: f.botID, actor: actor}
}

// GormUnitOfWork coordinates one database transaction for a business
// operation. Repositories obtained after Begin run inside the transaction.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	botID kernel.ObjectID
	actor kernel.ObjectID
}

// Begin opens the transaction and, for units acting as a user, binds the
// acting user to it. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if uow.actor != 0 {
		err := tx.Exec("SELECT set_config(?, ?, true)", ActingUserSetting, uow.actor.String()).Error
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction
// when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Without an open transaction, for
// instance after Commit, it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) IdentityRepository() ports.IdentityRepository {
	return identityrepo.NewGormIdentityRepository(uow.conn())
}

func (uow *GormUnitOfWork) AccessKeyRepository() ports.AccessKeyRepository {
	return accesskeyrepo.NewGormAccessKeyRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow.botID)
}

func (uow *GormUnitOfWork) MessageRepository() ports.MessageRepository {
	return messagerepo.NewGormMessageRepository(uow.conn())
}

// Models lists the GORM models of every table this service reads or writes,
// in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&identityrepo.UserDTO{},
		&accesskeyrepo.AccessKeyDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.PickingDTO{},
		&messagerepo.MessageDTO{},
	}
}
