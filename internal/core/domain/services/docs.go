// Package services provides domain services that work across several
// orders at once and so do not belong to a single aggregate.
//
// The package includes:
//   - OrderFilter: selects the orders a driver sees in the job listing
//   - OrderStatistics: computes the per-driver order counters
package services
