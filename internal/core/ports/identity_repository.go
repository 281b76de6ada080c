// Package ports defines the contracts between the application core and the
// backend record store. The backend owns users, API keys, orders, pickings
// and the audit trail; this service reaches them only through these
// interfaces.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
)

// IdentityRepository reads backend users. It never writes them.
type IdentityRepository interface {
	// FindByUsername returns the user with the given login. It returns an
	// error wrapping errs.ErrObjectNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*identity.Identity, error)

	// VerifyPassword reports whether password is the password of the user.
	// Unknown users yield false without error.
	VerifyPassword(ctx context.Context, id kernel.ObjectID, password string) (bool, error)

	// HasGroup reports whether the user belongs to the named backend group.
	HasGroup(ctx context.Context, id kernel.ObjectID, group string) (bool, error)
}
