// Package order models the backend sales order as seen by the dispatch
// service: header data for listings and the delivery picking that carries
// the job lifecycle (see package picking).
//
// Key business rules:
//   - Orders without a picking are excluded from every job view and operation
//   - Cancelling an order requires the caller to hold its assigned picking
package order
