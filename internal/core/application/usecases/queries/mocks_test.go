package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
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

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Append(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
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

type MockReadUoW struct{ mock.Mock }

func (m *MockReadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReadUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReadUoW) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

type MockReadUoWFactory struct{ mock.Mock }

func (m *MockReadUoWFactory) CreateAs(actor kernel.ObjectID) queries.ReadUoW {
	args := m.Called(actor)
	return args.Get(0).(queries.ReadUoW)
}

const botID kernel.ObjectID = 1

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

func newOrder(t *testing.T, id kernel.ObjectID, state picking.State, assignee identity.Assignee) *order.Order {
	t.Helper()
	p, err := picking.RestorePicking(id*10, state, assignee)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "S"+id.String(), time.Now(), order.Sale, nil, nil, 0, []*picking.Picking{p})
	require.NoError(t, err)
	return o
}

// readMocks wires a read unit of work acting as caller; Rollback is expected once.
func readMocks(ctx context.Context, caller *identity.Identity) (*MockReadUoWFactory, *MockReadUoW, *MockOrderRepository, *MockMessageRepository) {
	orderRepo := new(MockOrderRepository)
	messageRepo := new(MockMessageRepository)
	uow := new(MockReadUoW)
	factory := new(MockReadUoWFactory)

	factory.On("CreateAs", caller.ID()).Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	uow.On("MessageRepository").Return(messageRepo).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, orderRepo, messageRepo
}

func idsOf(items []queries.OrderView) []kernel.ObjectID {
	out := make([]kernel.ObjectID, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
