package auth

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/pkg/errs"
)

// AccessKeyBroker issues and resolves the backend API keys embedded in
// bearer tokens. A user holds at most one key per configured name: issuing
// a key revokes the previous one.
type AccessKeyBroker struct {
	uowFactory UoWFactory
	settings   Settings
	now        func() time.Time
}

func NewAccessKeyBroker(uowFactory UoWFactory, settings Settings) AccessKeyBroker {
	return AccessKeyBroker{uowFactory: uowFactory, settings: settings, now: time.Now}
}

// IssueFor rotates the API key of ident and returns the new raw key. ok is
// false, with a nil error, when ident is not in the API key group.
//
// Two logins racing for the same user can both delete the old key and then
// collide on insert. The loser retries once against the winner's key and
// reports accesskey.ErrKeyAlreadyExists if it collides again.
func (b AccessKeyBroker) IssueFor(ctx context.Context, ident *identity.Identity) (rawKey string, ok bool, err error) {
	if err = ident.Validate(); err != nil {
		return "", false, err
	}

	rawKey, ok, err = b.issueOnce(ctx, ident)
	if errors.Is(err, accesskey.ErrKeyAlreadyExists) {
		rawKey, ok, err = b.issueOnce(ctx, ident)
	}
	return rawKey, ok, err
}

func (b AccessKeyBroker) issueOnce(ctx context.Context, ident *identity.Identity) (rawKey string, ok bool, err error) {
	uow := b.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	allowed, err := uow.IdentityRepository().HasGroup(ctx, ident.ID(), b.settings.APIKeyGroup())
	if err != nil {
		return "", false, err
	}
	if !allowed {
		return "", false, nil
	}

	keys := uow.AccessKeyRepository()
	if err = keys.DeleteByName(ctx, ident.ID(), b.settings.APIKeyName()); err != nil {
		return "", false, err
	}

	key, raw, err := accesskey.Generate(ident.ID(), b.settings.APIKeyName(), b.settings.APIKeyScope(), b.now())
	if err != nil {
		return "", false, err
	}
	if err = keys.Add(ctx, key); err != nil {
		return "", false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", false, err
	}
	return raw, true, nil
}

// Resolve returns the identity owning rawKey. It fails with
// ErrAccessTokenDoesNotExist when username is unknown or holds no key, and
// with ErrAccessTokenNotAuthorized when rawKey does not match the held key.
func (b AccessKeyBroker) Resolve(ctx context.Context, username, rawKey string) (*identity.Identity, error) {
	uow := b.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ident, err := uow.IdentityRepository().FindByUsername(ctx, username)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrAccessTokenDoesNotExist
	}
	if err != nil {
		return nil, err
	}

	keys, err := uow.AccessKeyRepository().FindByName(ctx, ident.ID(), b.settings.APIKeyName())
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrAccessTokenDoesNotExist
	}
	for _, key := range keys {
		if key.Check(rawKey, b.settings.APIKeyScope()) {
			return ident, nil
		}
	}
	return nil, ErrAccessTokenNotAuthorized
}
