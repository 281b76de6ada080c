package http

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/workerpool"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testPassword = "secret"
	testGroup    = "drivers"
)

type memUser struct {
	ident    *identity.Identity
	password string
	groups   []string
}

type memOrder struct {
	id           kernel.ObjectID
	name         string
	state        order.State
	pickingID    kernel.ObjectID
	pickingState picking.State
	assignee     identity.Assignee
}

// memBackend is an in-memory record store shared by every unit of work it creates.
type memBackend struct {
	mu       sync.Mutex
	users    map[string]memUser
	keys     []*accesskey.AccessKey
	orders   map[kernel.ObjectID]memOrder
	messages []*message.Message
	// keyCollisions makes the next Add calls fail as if a concurrent login won the insert.
	keyCollisions int
}

func newMemBackend() *memBackend {
	return &memBackend{
		users:  make(map[string]memUser),
		orders: make(map[kernel.ObjectID]memOrder),
	}
}

func (b *memBackend) addUser(t *testing.T, id kernel.ObjectID, username string, active bool, groups ...string) *identity.Identity {
	t.Helper()
	ident, err := identity.NewIdentity(id, username, username+"@example.com", "", active)
	require.NoError(t, err)
	b.users[username] = memUser{ident: ident, password: testPassword, groups: groups}
	return ident
}

func (b *memBackend) addOrder(id kernel.ObjectID, state picking.State, assignee identity.Assignee) {
	b.orders[id] = memOrder{
		id:           id,
		name:         "S" + id.String(),
		state:        order.Sale,
		pickingID:    id + 1000,
		pickingState: state,
		assignee:     assignee,
	}
}

func (b *memBackend) order(id kernel.ObjectID) memOrder {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orders[id]
}

func (b *memBackend) messageBodies() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	bodies := make([]string, 0, len(b.messages))
	for _, m := range b.messages {
		bodies = append(bodies, m.Body())
	}
	return bodies
}

func (r memOrder) restore() (*order.Order, error) {
	p, err := picking.RestorePicking(r.pickingID, r.pickingState, r.assignee)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(r.id, r.name, time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC), r.state, nil, nil, 10, []*picking.Picking{p})
}

// memUoW writes straight to the backend. Rollback after a failed write is
// not supported; handlers fail before writing in the cases tested here.
type memUoW struct{ b *memBackend }

func (u memUoW) Begin(context.Context) error    { return nil }
func (u memUoW) Commit(context.Context) error   { return nil }
func (u memUoW) Rollback(context.Context) error { return nil }

func (u memUoW) IdentityRepository() ports.IdentityRepository   { return memIdentities(u) }
func (u memUoW) AccessKeyRepository() ports.AccessKeyRepository { return memKeys(u) }
func (u memUoW) OrderRepository() ports.OrderRepository         { return memOrders(u) }
func (u memUoW) MessageRepository() ports.MessageRepository     { return memMessages(u) }

type memIdentities memUoW

func (r memIdentities) FindByUsername(_ context.Context, username string) (*identity.Identity, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	u, ok := r.b.users[username]
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", username)
	}
	return u.ident, nil
}

func (r memIdentities) VerifyPassword(_ context.Context, id kernel.ObjectID, password string) (bool, error) {
	u, ok := r.byID(id)
	return ok && u.password == password, nil
}

func (r memIdentities) HasGroup(_ context.Context, id kernel.ObjectID, group string) (bool, error) {
	u, ok := r.byID(id)
	return ok && slices.Contains(u.groups, group), nil
}

func (r memIdentities) byID(id kernel.ObjectID) (memUser, bool) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, u := range r.b.users {
		if u.ident.ID() == id {
			return u, true
		}
	}
	return memUser{}, false
}

type memKeys memUoW

func (r memKeys) Add(_ context.Context, key *accesskey.AccessKey) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.b.keyCollisions > 0 {
		r.b.keyCollisions--
		return accesskey.ErrKeyAlreadyExists
	}
	r.b.keys = append(r.b.keys, key)
	return nil
}

func (r memKeys) FindByName(_ context.Context, identityID kernel.ObjectID, name string) ([]*accesskey.AccessKey, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	var found []*accesskey.AccessKey
	for _, k := range r.b.keys {
		if k.IdentityID() == identityID && k.Name() == name {
			found = append(found, k)
		}
	}
	return found, nil
}

func (r memKeys) DeleteByName(_ context.Context, identityID kernel.ObjectID, name string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.keys = slices.DeleteFunc(r.b.keys, func(k *accesskey.AccessKey) bool {
		return k.IdentityID() == identityID && k.Name() == name
	})
	return nil
}

func (r memKeys) DeleteCreatedBefore(_ context.Context, name string, before time.Time) (int64, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	n := len(r.b.keys)
	r.b.keys = slices.DeleteFunc(r.b.keys, func(k *accesskey.AccessKey) bool {
		return k.Name() == name && k.CreatedAt().Before(before)
	})
	return int64(n - len(r.b.keys)), nil
}

type memOrders memUoW

func (r memOrders) Get(_ context.Context, id kernel.ObjectID) (*order.Order, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	rec, ok := r.b.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return rec.restore()
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	rec := r.b.orders[o.ID()]
	p, err := o.Picking()
	if err != nil {
		return err
	}
	rec.state = o.State()
	rec.pickingState = p.State()
	rec.assignee = p.Assignee()
	r.b.orders[o.ID()] = rec
	return nil
}

func (r memOrders) GetAllWithPickings(context.Context) ([]*order.Order, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	ids := make([]kernel.ObjectID, 0, len(r.b.orders))
	for id := range r.b.orders {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	slices.Reverse(ids)

	all := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.b.orders[id].restore()
		if err != nil {
			return nil, err
		}
		all = append(all, o)
	}
	return all, nil
}

type memMessages memUoW

func (r memMessages) Append(_ context.Context, m *message.Message) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	r.b.messages = append(r.b.messages, m)
	return nil
}

func (r memMessages) ListByAuthorSince(
	_ context.Context,
	authorID kernel.ObjectID,
	model message.Model,
	since time.Time,
) ([]*message.Message, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	var found []*message.Message
	for _, m := range r.b.messages {
		if m.AuthorID() == authorID && m.Model() == model && !m.Date().Before(since) {
			found = append(found, m)
		}
	}
	return found, nil
}

type (
	orderUoWFactory func() commands.OrderUoW
	readUoWFactory  func() queries.ReadUoW
	authUoWFactory  func() auth.UoW
)

func (f orderUoWFactory) CreateAs(kernel.ObjectID) commands.OrderUoW { return f() }
func (f readUoWFactory) CreateAs(kernel.ObjectID) queries.ReadUoW    { return f() }
func (f authUoWFactory) Create() auth.UoW                            { return f() }

type testAPI struct {
	echo     *echo.Echo
	backend  *memBackend
	tokens   *auth.TokenService
	registry *prometheus.Registry
}

func newTestAPI(t *testing.T, b *memBackend, cfg RouterConfig) testAPI {
	t.Helper()

	settings, err := auth.NewSettings(testSecret, time.Hour, "", "", testGroup)
	require.NoError(t, err)

	uow := memUoW{b: b}
	orderUoWs := orderUoWFactory(func() commands.OrderUoW { return uow })
	readUoWs := readUoWFactory(func() queries.ReadUoW { return uow })
	authUoWs := authUoWFactory(func() auth.UoW { return uow })

	tokens := auth.NewTokenService(settings)
	broker := auth.NewAccessKeyBroker(authUoWs, settings)

	handlers := Handlers{
		IssueToken:  commands.NewIssueTokenCommandHandler(auth.NewCredentialVerifier(authUoWs), broker, tokens),
		AcceptOrder: commands.NewAcceptOrderCommandHandler(orderUoWs),
		DropOff:     commands.NewDropOffOrderCommandHandler(orderUoWs),
		CancelOrder: commands.NewCancelOrderCommandHandler(orderUoWs),
		CancelJob:   commands.NewCancelJobCommandHandler(orderUoWs),
		ListOrders:  queries.NewListOrdersQueryHandler(readUoWs),
		UserStats:   queries.NewGetUserStatsQueryHandler(readUoWs),
		Profile:     queries.NewGetProfileQueryHandler(),
	}

	pool := workerpool.New(2, time.Second)
	t.Cleanup(func() { _ = pool.Close(context.Background()) })

	registry := prometheus.NewRegistry()
	if cfg.Gatherer == nil {
		cfg.Gatherer = registry
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(handlers, auth.NewGateway(tokens, broker), pool, NewMetrics(registry), logger)

	return testAPI{echo: NewEcho(server, cfg), backend: b, tokens: tokens, registry: registry}
}
