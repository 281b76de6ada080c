// Package picking models the delivery leg of an order and the job lifecycle
// rules that govern it.
//
// Key business rules:
//   - A picking may be accepted only when nobody or the system bot holds it
//   - Only the assignee may drop off, cancel the order, or cancel the job
//   - Cancelling requires the picking to be in the assigned state
//   - "unassigned" is a derived display state and is never stored
package picking
