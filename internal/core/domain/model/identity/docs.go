// Package identity models the authenticated backend user (Identity) and the
// tagged Assignee value that records who holds a delivery picking.
//
// Identities are never constructed from request input directly: the access
// key broker resolves them from the backend store on every request.
package identity
