package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/identityrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/message"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite checks transaction boundaries against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), postgres_adapter.Models()...)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, botID)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users, access_keys, orders, order_lines, pickings, messages").Error
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&identityrepo.UserDTO{ID: 10, Login: "alice", Active: true, PasswordHash: "x"}).Error)
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:        42,
		Name:      "S00042",
		DateOrder: time.Now(),
		State:     "sale",
		Pickings:  []orderrepo.PickingDTO{{ID: 420, State: "assigned"}},
	}).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsJobChangeAndAuditTogether() {
	ctx := context.Background()
	uow := suite.factory.CreateAs(10)
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, 42)
	suite.Require().NoError(err)
	p, err := o.Picking()
	suite.Require().NoError(err)
	suite.Require().NoError(p.Accept(10))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	m, err := message.NewMessage(message.ModelOrder, 42, 10, message.AcceptedBody("alice"), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MessageRepository().Append(ctx, m))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	reloaded, err := reader.OrderRepository().Get(ctx, 42)
	suite.Require().NoError(err)
	rp, _ := reloaded.Picking()
	suite.True(rp.IsHeldBy(10))
	messages, err := reader.MessageRepository().ListByAuthorSince(ctx, 10, message.ModelOrder, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Len(messages, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEveryChange() {
	ctx := context.Background()
	uow := suite.factory.CreateAs(10)
	suite.Require().NoError(uow.Begin(ctx))

	o, err := uow.OrderRepository().Get(ctx, 42)
	suite.Require().NoError(err)
	p, _ := o.Picking()
	suite.Require().NoError(p.Accept(10))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	key, _, err := accesskey.Generate(10, "dispatch.api", "me_profile", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AccessKeyRepository().Add(ctx, key))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	reloaded, err := reader.OrderRepository().Get(ctx, 42)
	suite.Require().NoError(err)
	rp, _ := reloaded.Picking()
	suite.Equal(picking.Unassigned, rp.DerivedState())
	suite.Equal(identity.NoAssignee(), rp.Assignee())
	keys, err := reader.AccessKeyRepository().FindByName(ctx, 10, "dispatch.api")
	suite.Require().NoError(err)
	suite.Empty(keys)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRowLock_SerializesConcurrentAccept() {
	ctx := context.Background()
	first := suite.factory.CreateAs(10)
	suite.Require().NoError(first.Begin(ctx))
	_, err := first.OrderRepository().Get(ctx, 42)
	suite.Require().NoError(err)

	second := suite.factory.CreateAs(11)
	suite.Require().NoError(second.Begin(ctx))
	defer func() { _ = second.Rollback(ctx) }()

	lockCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, err = second.OrderRepository().Get(lockCtx, 42)
	suite.Require().Error(err, "second reader must wait for the row lock")

	suite.Require().NoError(first.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
