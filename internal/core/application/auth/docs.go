// Package auth brokers identity between API clients and the backend.
//
// A login verifies the password with the backend, rotates the caller's
// backend API key and wraps username and key into a short-lived HS256
// bearer token. Every authenticated request then goes through Gateway,
// which validates the token, resolves the embedded key back to a live
// backend identity and enforces the scopes the route requires.
//
// Nothing in this package caches identities: a revoked key or an archived
// user is rejected on the very next request.
package auth
