package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/message"
	"dispatch/internal/core/domain/services"
)

// GetUserStatsQueryHandler counts the caller's jobs. It reads all orders with
// a picking and the caller's order messages of the current month.
type GetUserStatsQueryHandler struct {
	uowFactory ReadUoWFactory
	stats      services.OrderStatistics
	now        func() time.Time
}

func NewGetUserStatsQueryHandler(uowFactory ReadUoWFactory) GetUserStatsQueryHandler {
	return GetUserStatsQueryHandler{uowFactory: uowFactory, stats: services.NewOrderStatistics(), now: time.Now}
}

func (h GetUserStatsQueryHandler) Handle(ctx context.Context, query GetUserStatsQuery) (services.UserStats, error) {
	if err := query.Validate(); err != nil {
		return services.UserStats{}, err
	}
	caller := query.Caller()
	now := h.now()

	uow := h.uowFactory.CreateAs(caller.ID())
	if err := uow.Begin(ctx); err != nil {
		return services.UserStats{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllWithPickings(ctx)
	if err != nil {
		return services.UserStats{}, err
	}

	messages, err := uow.MessageRepository().ListByAuthorSince(ctx, caller.ID(), message.ModelOrder, h.stats.MonthStart(now))
	if err != nil {
		return services.UserStats{}, err
	}

	return h.stats.Compute(caller.ID(), orders, messages, now), nil
}
