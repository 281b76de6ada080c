package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// ListOrdersQueryHandler reads every order with a picking as the caller,
// filters it with services.OrderFilter and cuts the requested page.
type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
	filter     services.OrderFilter
}

func NewListOrdersQueryHandler(uowFactory ReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory, filter: services.NewOrderFilter()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	caller := query.Caller()

	uow := h.uowFactory.CreateAs(caller.ID())
	if err := uow.Begin(ctx); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllWithPickings(ctx)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	visible := h.filter.Apply(orders, caller.ID(), query.States())
	return paginate(visible, query.Page(), query.Size()), nil
}

func paginate(orders []*order.Order, page, size int) ListOrdersQueryResponse {
	total := len(orders)
	resp := ListOrdersQueryResponse{
		Items: make([]OrderView, 0, size),
		Total: total,
		Page:  page,
		Size:  size,
		Pages: (total + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= total {
		return resp
	}
	end := min(start+size, total)
	for _, o := range orders[start:end] {
		resp.Items = append(resp.Items, newOrderView(o))
	}
	return resp
}
