package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/kernel"
)

// AccessKeyRepository stores the backend API keys embedded in bearer tokens.
type AccessKeyRepository interface {
	// Add persists a freshly generated key.
	Add(ctx context.Context, key *accesskey.AccessKey) error

	// FindByName returns the keys of the identity registered under name.
	// An empty slice means the identity has no such key.
	FindByName(ctx context.Context, identityID kernel.ObjectID, name string) ([]*accesskey.AccessKey, error)

	// DeleteByName revokes every key of the identity registered under name.
	DeleteByName(ctx context.Context, identityID kernel.ObjectID, name string) error

	// DeleteCreatedBefore removes keys registered under name, for every
	// identity, created strictly before the given instant. It returns the
	// number of removed keys.
	DeleteCreatedBefore(ctx context.Context, name string, before time.Time) (int64, error)
}
