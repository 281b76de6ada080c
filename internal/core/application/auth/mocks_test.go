package auth_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockIdentityRepository struct{ mock.Mock }

func (m *MockIdentityRepository) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) VerifyPassword(ctx context.Context, id kernel.ObjectID, password string) (bool, error) {
	args := m.Called(ctx, id, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityRepository) HasGroup(ctx context.Context, id kernel.ObjectID, group string) (bool, error) {
	args := m.Called(ctx, id, group)
	return args.Bool(0), args.Error(1)
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

func (m *MockUoW) AccessKeyRepository() ports.AccessKeyRepository {
	args := m.Called()
	return args.Get(0).(ports.AccessKeyRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() auth.UoW {
	args := m.Called()
	return args.Get(0).(auth.UoW)
}

const testSecret = "test-secret-key"

func testSettings() auth.Settings {
	s, err := auth.NewSettings(testSecret, time.Hour, "", "", "")
	if err != nil {
		panic(err)
	}
	return s
}

func newIdentity(id kernel.ObjectID, username string, active bool) *identity.Identity {
	ident, err := identity.NewIdentity(id, username, username+"@example.com", "", active)
	if err != nil {
		panic(err)
	}
	return ident
}
