package auth

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/pkg/errs"
)

// CredentialVerifier checks a username and password against the backend.
type CredentialVerifier struct {
	uowFactory UoWFactory
}

func NewCredentialVerifier(uowFactory UoWFactory) CredentialVerifier {
	return CredentialVerifier{uowFactory: uowFactory}
}

// Verify returns the identity owning the credentials. Unknown users, wrong
// passwords and archived users all yield ErrInvalidCredentials.
func (v CredentialVerifier) Verify(ctx context.Context, username, password string) (*identity.Identity, error) {
	if identity.ValidateUsername(username) != nil || password == "" {
		return nil, ErrInvalidCredentials
	}

	uow := v.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	identities := uow.IdentityRepository()

	ident, err := identities.FindByUsername(ctx, username)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !ident.IsActive() {
		return nil, ErrInvalidCredentials
	}

	ok, err := identities.VerifyPassword(ctx, ident.ID(), password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return ident, nil
}
