package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/identity"
)

// RejectReason tells why Gateway refused a request.
type RejectReason string

const (
	ReasonMissingCredentials RejectReason = "missing_credentials"
	ReasonInvalidCredentials RejectReason = "invalid_credentials"
	ReasonRevoked            RejectReason = "revoked"
	ReasonInactiveUser       RejectReason = "inactive_user"
	ReasonInsufficientScope  RejectReason = "insufficient_scope"
)

const (
	DetailNotAuthenticated        = "Not authenticated"
	DetailCouldNotValidate        = "Could not validate credentials"
	DetailAccessTokenNotExist     = "API Access Token Does Not Exist"
	DetailAccessTokenNotAuthentic = "API Access Token Does Not Authenticate"
	DetailInactiveUser            = "Inactive user"
	DetailNotEnoughPermissions    = "Not enough permissions"
)

// Rejection is returned by Gateway.Authorize for every refused request.
// Challenge is the WWW-Authenticate value naming the required scopes.
type Rejection struct {
	Reason    RejectReason
	Challenge string
	Detail    string
	Err       error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %s: %v", r.Reason, r.Detail, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
}

func (r *Rejection) Unwrap() error { return r.Err }

// Principal is an authorized caller.
type Principal struct {
	Identity *identity.Identity
	Scopes   []Scope
}

type (
	TokenValidator interface {
		Validate(raw string) (TokenClaims, error)
	}

	KeyResolver interface {
		Resolve(ctx context.Context, username, rawKey string) (*identity.Identity, error)
	}
)

// Gateway authorizes requests carrying a bearer token. It is read-only.
type Gateway struct {
	tokens TokenValidator
	keys   KeyResolver
}

func NewGateway(tokens TokenValidator, keys KeyResolver) Gateway {
	return Gateway{tokens: tokens, keys: keys}
}

// Authorize checks authorizationHeader and the required scopes, in this
// order: token present, token valid, key live, user active, scopes granted.
// Refusals are *Rejection; any other error comes from the backend.
func (g Gateway) Authorize(ctx context.Context, authorizationHeader string, required []Scope) (Principal, error) {
	challenge := Challenge(required)
	reject := func(reason RejectReason, detail string, err error) (Principal, error) {
		return Principal{}, &Rejection{Reason: reason, Challenge: challenge, Detail: detail, Err: err}
	}

	raw, ok := BearerFromHeader(authorizationHeader)
	if !ok {
		return reject(ReasonMissingCredentials, DetailNotAuthenticated, nil)
	}

	claims, err := g.tokens.Validate(raw)
	if err != nil {
		return reject(ReasonInvalidCredentials, DetailCouldNotValidate, err)
	}

	ident, err := g.keys.Resolve(ctx, claims.Username, claims.AccessKey)
	switch {
	case errors.Is(err, ErrAccessTokenDoesNotExist):
		return reject(ReasonRevoked, DetailAccessTokenNotExist, err)
	case errors.Is(err, ErrAccessTokenNotAuthorized):
		return reject(ReasonRevoked, DetailAccessTokenNotAuthentic, err)
	case err != nil:
		return Principal{}, err
	}

	if !ident.IsActive() {
		return reject(ReasonInactiveUser, DetailInactiveUser, nil)
	}

	if missing := Missing(claims.Scopes, required); len(missing) > 0 {
		return reject(ReasonInsufficientScope, DetailNotEnoughPermissions, nil)
	}

	return Principal{Identity: ident, Scopes: claims.Scopes}, nil
}

// Challenge builds the WWW-Authenticate value for the required scopes.
func Challenge(required []Scope) string {
	if len(required) == 0 {
		return "Bearer"
	}
	return fmt.Sprintf("Bearer scope=%q", strings.Join(Strings(required), " "))
}

// BearerFromHeader extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func BearerFromHeader(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
