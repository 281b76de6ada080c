package http

import (
	"context"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrders returns a page of jobs filtered by picking state.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Security	OAuth2Password[orders:list]
//	@Param		state	query		[]string	false	"Picking states"	collectionFormat(multi) Enums(assigned, waiting, confirmed, done, cancelled, unassigned)
//	@Param		page	query		int			false	"Page number"		minimum(1) default(1)
//	@Param		size	query		int			false	"Page size"			minimum(1) maximum(100) default(50)
//	@Success	200		{object}	orderPageResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	401		{object}	errorResponse
//	@Router		/orders/ [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return s.respondError(ctx, errNoPrincipal)
	}

	// Optional parameters bind into pointers left nil when absent.
	var (
		rawStates  *[]string
		page, size *int
	)
	params := ctx.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "state", params, &rawStates); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("state", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", params, &page); err != nil {
		return s.respondError(ctx, queries.ErrPageIsInvalid)
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", params, &size); err != nil {
		return s.respondError(ctx, queries.ErrSizeIsInvalid)
	}

	pageNumber, pageSize := queries.DefaultPage, queries.DefaultPageSize
	if page != nil {
		if *page < 1 {
			return s.respondError(ctx, queries.ErrPageIsInvalid)
		}
		pageNumber = *page
	}
	if size != nil {
		if *size < 1 || *size > queries.MaxPageSize {
			return s.respondError(ctx, queries.ErrSizeIsInvalid)
		}
		pageSize = *size
	}

	var states []picking.State
	if rawStates != nil {
		states = make([]picking.State, 0, len(*rawStates))
		for _, raw := range *rawStates {
			st, err := picking.ParseFilterState(raw)
			if err != nil {
				return s.respondError(ctx, err)
			}
			states = append(states, st)
		}
	}

	query, err := queries.NewListOrdersQuery(principal.Identity, states, pageNumber, pageSize)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var result queries.ListOrdersQueryResponse
	err = s.run(ctx.Request().Context(), func(runCtx context.Context) error {
		var handleErr error
		result, handleErr = s.handlers.ListOrders.Handle(runCtx, query)
		return handleErr
	})
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newOrderPageResponse(result))
}

// AcceptOrder makes the caller the driver of an order.
//
//	@Summary	Accept an order
//	@Tags		orders
//	@Produce	json
//	@Security	OAuth2Password[orders:post]
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	objectIDResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	401	{object}	errorResponse
//	@Failure	404	{object}	errorResponse	"See the X-Error-Reason header"
//	@Router		/orders/{id}/accept [post]
func (s *Server) AcceptOrder(ctx echo.Context) error {
	principal, orderID, err := s.jobRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, principal)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.runJob(ctx, orderID, func(runCtx context.Context) error {
		return s.handlers.AcceptOrder.Handle(runCtx, cmd)
	})
}

// DropOffOrder reports an order as delivered.
//
//	@Summary	Drop off an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	OAuth2Password[orders:post]
//	@Param		id		path		int				true	"Order id"
//	@Param		body	body		dropOffRequest	false	"Delivery details"
//	@Success	200		{object}	objectIDResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	401		{object}	errorResponse
//	@Failure	404		{object}	errorResponse	"See the X-Error-Reason header"
//	@Router		/orders/{id}/drop-off [post]
func (s *Server) DropOffOrder(ctx echo.Context) error {
	principal, orderID, err := s.jobRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req dropOffRequest
	if err = ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errInvalidBody)
	}

	cmd, err := commands.NewDropOffOrderCommand(orderID, principal, req.DropOffAt, req.CollectedAt, req.Note)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.runJob(ctx, orderID, func(runCtx context.Context) error {
		return s.handlers.DropOff.Handle(runCtx, cmd)
	})
}

// CancelOrder cancels the order the caller is delivering.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	OAuth2Password[orders:post]
//	@Param		id		path		int				true	"Order id"
//	@Param		body	body		cancelRequest	true	"Cancellation reason"
//	@Success	200		{object}	objectIDResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	401		{object}	errorResponse
//	@Failure	404		{object}	errorResponse	"See the X-Error-Reason header"
//	@Router		/orders/{id}/cancel-order [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, orderID, reason, err := s.cancelRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal, reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.runJob(ctx, orderID, func(runCtx context.Context) error {
		return s.handlers.CancelOrder.Handle(runCtx, cmd)
	})
}

// CancelJob hands the order back so another driver can take it.
//
//	@Summary	Give up a delivery job
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	OAuth2Password[orders:post]
//	@Param		id		path		int				true	"Order id"
//	@Param		body	body		cancelRequest	true	"Cancellation reason"
//	@Success	200		{object}	objectIDResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	401		{object}	errorResponse
//	@Failure	404		{object}	errorResponse	"See the X-Error-Reason header"
//	@Router		/orders/{id}/cancel-job [post]
func (s *Server) CancelJob(ctx echo.Context) error {
	principal, orderID, reason, err := s.cancelRequest(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelJobCommand(orderID, principal, reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.runJob(ctx, orderID, func(runCtx context.Context) error {
		return s.handlers.CancelJob.Handle(runCtx, cmd)
	})
}

func (s *Server) jobRequest(ctx echo.Context) (*identity.Identity, kernel.ObjectID, error) {
	principal, ok := principalFrom(ctx)
	if !ok {
		return nil, 0, errNoPrincipal
	}
	orderID, err := kernel.ObjectIDFromString(ctx.Param("id"))
	if err != nil {
		return nil, 0, err
	}
	return principal.Identity, orderID, nil
}

func (s *Server) cancelRequest(ctx echo.Context) (*identity.Identity, kernel.ObjectID, string, error) {
	caller, orderID, err := s.jobRequest(ctx)
	if err != nil {
		return nil, 0, "", err
	}
	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return nil, 0, "", errInvalidBody
	}
	return caller, orderID, req.Reason, nil
}

func (s *Server) runJob(ctx echo.Context, orderID kernel.ObjectID, fn func(ctx context.Context) error) error {
	if err := s.run(ctx.Request().Context(), fn); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, objectIDResponse{ObjectID: orderID.Int64()})
}
