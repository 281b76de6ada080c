package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

type orderStatsResponse struct {
	Assigned         int    `json:"assigned"`
	Completed        int    `json:"completed"`
	CompletedInMonth int    `json:"completed_in_month"`
	CurrentPeriod    string `json:"current_period"`
}

type statsResponse struct {
	Orders orderStatsResponse `json:"orders"`
}

type orderLineResponse struct {
	Product   string  `json:"product"`
	Quantity  float64 `json:"quantity"`
	PriceUnit float64 `json:"price_unit"`
}

type addressResponse struct {
	Street  string `json:"street"`
	Street2 string `json:"street2"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	DisplayName     string              `json:"display_name"`
	DateOrder       time.Time           `json:"date_order"`
	State           string              `json:"state"`
	PickingState    string              `json:"picking_state"`
	Lines           []orderLineResponse `json:"order_line"`
	DeliveryAddress *addressResponse    `json:"delivery_address"`
	AmountTotal     float64             `json:"amount_total"`
}

type orderPageResponse struct {
	Items []orderResponse `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Pages int             `json:"pages"`
}

type objectIDResponse struct {
	ObjectID int64 `json:"object_id"`
}

type dropOffRequest struct {
	DropOffAt   *time.Time `json:"drop_off_at"`
	CollectedAt *time.Time `json:"collected_at"`
	Note        string     `json:"note"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func newProfileResponse(p queries.GetProfileQueryResponse) profileResponse {
	return profileResponse{Username: p.Username, Email: p.Email, FullName: p.FullName, Disabled: p.Disabled}
}

func newStatsResponse(s services.UserStats) statsResponse {
	return statsResponse{Orders: orderStatsResponse{
		Assigned:         s.Assigned,
		Completed:        s.Completed,
		CompletedInMonth: s.CompletedInMonth,
		CurrentPeriod:    s.CurrentPeriod,
	}}
}

func newOrderPageResponse(page queries.ListOrdersQueryResponse) orderPageResponse {
	items := make([]orderResponse, 0, len(page.Items))
	for _, v := range page.Items {
		lines := make([]orderLineResponse, 0, len(v.Lines))
		for _, l := range v.Lines {
			lines = append(lines, orderLineResponse{Product: l.Product, Quantity: l.Quantity, PriceUnit: l.PriceUnit})
		}
		var address *addressResponse
		if a := v.DeliveryAddress; a != nil {
			address = &addressResponse{
				Street:  a.Street,
				Street2: a.Street2,
				Zip:     a.Zip,
				City:    a.City,
				State:   a.State,
				Country: a.Country,
			}
		}
		items = append(items, orderResponse{
			ID:              v.ID.Int64(),
			DisplayName:     v.DisplayName,
			DateOrder:       v.OrderDate,
			State:           v.State.String(),
			PickingState:    v.PickingState.String(),
			Lines:           lines,
			DeliveryAddress: address,
			AmountTotal:     v.AmountTotal,
		})
	}
	return orderPageResponse{Items: items, Total: page.Total, Page: page.Page, Size: page.Size, Pages: page.Pages}
}
