package auth

import "errors"

var (
	// ErrImproperlyConfigured is returned by NewSettings when the signing secret is missing.
	ErrImproperlyConfigured = errors.New("auth is improperly configured")

	// ErrMalformedToken is returned for a token with a bad signature, structure or subject.
	ErrMalformedToken = errors.New("malformed token")
	// ErrExpiredToken is returned for a well formed token past its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidCredentials is returned when the username or password does not match.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrCannotAuthenticate is returned when valid credentials belong to a
	// user who may not obtain an API key.
	ErrCannotAuthenticate = errors.New("cannot authenticate user")

	// ErrAccessTokenDoesNotExist is returned when the token user is unknown
	// or holds no API key.
	ErrAccessTokenDoesNotExist = errors.New("API access token does not exist")
	// ErrAccessTokenNotAuthorized is returned when the user holds an API key
	// but the supplied key does not match it.
	ErrAccessTokenNotAuthorized = errors.New("API access token does not authenticate")
)
