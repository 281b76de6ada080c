// Package accesskey holds the backend API keys that bearer tokens carry.
//
// A key is generated when a user logs in, rotated on every login and
// checked on every authenticated request. Keys never leave the backend in
// clear text except in the token handed to the key owner.
package accesskey
