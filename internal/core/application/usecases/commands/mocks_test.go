package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ObjectID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllWithPickings(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
	appended []*message.Message
}

func (m *MockMessageRepository) Append(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil {
		m.appended = append(m.appended, msg)
	}
	return args.Error(0)
}

func (m *MockMessageRepository) ListByAuthorSince(
	ctx context.Context,
	authorID kernel.ObjectID,
	model message.Model,
	since time.Time,
) ([]*message.Message, error) {
	args := m.Called(ctx, authorID, model, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*message.Message), args.Error(1)
}

type MockAccessKeyRepository struct{ mock.Mock }

func (m *MockAccessKeyRepository) Add(ctx context.Context, key *accesskey.AccessKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) FindByName(
	ctx context.Context,
	identityID kernel.ObjectID,
	name string,
) ([]*accesskey.AccessKey, error) {
	args := m.Called(ctx, identityID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accesskey.AccessKey), args.Error(1)
}

func (m *MockAccessKeyRepository) DeleteByName(ctx context.Context, identityID kernel.ObjectID, name string) error {
	args := m.Called(ctx, identityID, name)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) DeleteCreatedBefore(ctx context.Context, name string, before time.Time) (int64, error) {
	args := m.Called(ctx, name, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) CreateAs(actor kernel.ObjectID) commands.OrderUoW {
	args := m.Called(actor)
	return args.Get(0).(commands.OrderUoW)
}

type MockAccessKeyUoW struct{ mock.Mock }

func (m *MockAccessKeyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccessKeyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccessKeyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccessKeyUoW) AccessKeyRepository() ports.AccessKeyRepository {
	args := m.Called()
	return args.Get(0).(ports.AccessKeyRepository)
}

type MockAccessKeyUoWFactory struct{ mock.Mock }

func (m *MockAccessKeyUoWFactory) Create() commands.AccessKeyUoW {
	args := m.Called()
	return args.Get(0).(commands.AccessKeyUoW)
}

const (
	orderID   kernel.ObjectID = 42
	pickingID kernel.ObjectID = 420
	botID     kernel.ObjectID = 1
)

var (
	alice = mustIdentity(10, "alice", "Alice")
	bob   = mustIdentity(11, "bob", "Bob")
)

func mustIdentity(id kernel.ObjectID, username, name string) *identity.Identity {
	ident, err := identity.NewIdentity(id, username, username+"@example.com", name, true)
	if err != nil {
		panic(err)
	}
	return ident
}

func newJob(t *testing.T, state picking.State, assignee identity.Assignee) *order.Order {
	t.Helper()
	p, err := picking.RestorePicking(pickingID, state, assignee)
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, "S00042", time.Now(), order.Sale, nil, nil, 10, []*picking.Picking{p})
	require.NoError(t, err)
	return o
}

// lifecycleMocks wires a unit of work whose repositories are the returned mocks.
// Expectations on Begin, repository accessors and Rollback are set; the
// test adds the rest.
func lifecycleMocks(
	ctx context.Context,
	caller *identity.Identity,
) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository, *MockMessageRepository) {
	orderRepo := new(MockOrderRepository)
	messageRepo := new(MockMessageRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("CreateAs", caller.ID()).Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MessageRepository").Return(messageRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, orderRepo, messageRepo
}

func bodiesOf(messages []*message.Message) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Body())
	}
	return out
}
