// Package message models the backend audit trail entries that every job
// lifecycle operation appends to the affected order and picking.
package message
