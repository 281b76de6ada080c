package services

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
)

// PeriodLayout renders the statistics period, e.g. "October 2026".
const PeriodLayout = "January 2006"

// UserStats holds the order counters of one driver.
//
// Assigned and Completed come from the current picking state. CompletedInMonth
// comes from the audit trail and may disagree with Completed: a delivery
// dropped off and later reassigned still counts there.
type UserStats struct {
	Assigned         int
	Completed        int
	CompletedInMonth int
	CurrentPeriod    string
}

// OrderStatistics computes UserStats from the orders and the caller's audit messages.
type OrderStatistics struct{}

func NewOrderStatistics() OrderStatistics {
	return OrderStatistics{}
}

// MonthStart returns midnight of the first day of the month containing now,
// in now's location. Audit messages older than that are ignored.
func (s OrderStatistics) MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Compute counts, for caller:
//   - Assigned: orders with a picking held by caller, whatever its state
//   - Completed: orders with a done picking held by caller
//   - CompletedInMonth: orders carrying a drop-off message authored by caller
//     since MonthStart(now)
//
// Orders without picking are ignored by every counter.
func (s OrderStatistics) Compute(
	caller kernel.ObjectID,
	orders []*order.Order,
	messages []*message.Message,
	now time.Time,
) UserStats {
	stats := UserStats{CurrentPeriod: now.Format(PeriodLayout)}

	withPicking := make(map[kernel.ObjectID]struct{}, len(orders))
	for _, o := range orders {
		if !o.HasPicking() {
			continue
		}
		withPicking[o.ID()] = struct{}{}

		held, done := false, false
		for _, p := range o.Pickings() {
			if p.IsHeldBy(caller) {
				held = true
				if p.State() == picking.Done {
					done = true
				}
			}
		}
		if held {
			stats.Assigned++
		}
		if done {
			stats.Completed++
		}
	}

	since := s.MonthStart(now)
	dropped := make(map[kernel.ObjectID]struct{})
	for _, m := range messages {
		if m.Model() != message.ModelOrder || m.AuthorID() != caller || !m.IsDropOff() {
			continue
		}
		if m.Date().Before(since) {
			continue
		}
		if _, ok := withPicking[m.ResID()]; ok {
			dropped[m.ResID()] = struct{}{}
		}
	}
	stats.CompletedInMonth = len(dropped)

	return stats
}
