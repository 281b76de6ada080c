package commands

import (
	"context"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/domain/model/identity"
)

type (
	CredentialChecker interface {
		Verify(ctx context.Context, username, password string) (*identity.Identity, error)
	}

	KeyIssuer interface {
		IssueFor(ctx context.Context, ident *identity.Identity) (rawKey string, ok bool, err error)
	}

	TokenIssuer interface {
		Issue(username, accessKey string, scopes []auth.Scope, ttl time.Duration) (auth.BearerToken, error)
	}
)

// IssueTokenCommandHandler logs a user in: it checks the password, rotates
// the user's backend API key and signs a bearer token around it.
//
// Example:
//
//	token, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, auth.ErrInvalidCredentials):
//	    // 401 Incorrect username or password
//	case errors.Is(err, auth.ErrCannotAuthenticate):
//	    // 401 user is not allowed to use the API
//	}
type IssueTokenCommandHandler struct {
	credentials CredentialChecker
	keys        KeyIssuer
	tokens      TokenIssuer
}

func NewIssueTokenCommandHandler(credentials CredentialChecker, keys KeyIssuer, tokens TokenIssuer) IssueTokenCommandHandler {
	return IssueTokenCommandHandler{credentials: credentials, keys: keys, tokens: tokens}
}

func (h IssueTokenCommandHandler) Handle(ctx context.Context, command IssueTokenCommand) (auth.BearerToken, error) {
	if err := command.Validate(); err != nil {
		return auth.BearerToken{}, err
	}

	ident, err := h.credentials.Verify(ctx, command.Username(), command.Password())
	if err != nil {
		return auth.BearerToken{}, err
	}

	rawKey, ok, err := h.keys.IssueFor(ctx, ident)
	if err != nil {
		return auth.BearerToken{}, err
	}
	if !ok {
		return auth.BearerToken{}, auth.ErrCannotAuthenticate
	}

	return h.tokens.Issue(ident.Username(), rawKey, command.Scopes(), command.TTL())
}
