package auth

import (
	"context"

	"dispatch/internal/core/ports"
)

type (
	// UoW is the backend transaction the auth components run in. It uses
	// the service's own privileges: the caller is not known yet.
	UoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		IdentityRepository() ports.IdentityRepository
		AccessKeyRepository() ports.AccessKeyRepository
	}

	UoWFactory interface {
		Create() UoW
	}
)
