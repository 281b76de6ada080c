package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderErrorReason carries the machine readable cause of a refused job operation.
const HeaderErrorReason = "X-Error-Reason"

const (
	detailInternalError = "Internal Server Error"
	detailInvalidBody   = "Invalid request body"
	detailLoginConflict = "Another login for this user is in progress. Please retry."
)

var (
	errInvalidBody = errs.NewValueIsInvalidError("request body")
	// errNoPrincipal means a protected handler was mounted without requireScopes.
	errNoPrincipal = errors.New("request has no authorized principal")
)

type lifecycleFailure struct {
	err    error
	reason string
	detail string
}

// lifecycleFailures maps refused job operations to their 404 reason and detail.
var lifecycleFailures = []lifecycleFailure{
	{order.ErrOrderNotFound, "order_not_found", "Order not found"},
	{picking.ErrAlreadyAssignedToCaller, "already_assigned_to_caller", "Order is already assigned to you"},
	{picking.ErrAlreadyAssigned, "already_assigned", "Order is already assigned"},
	{picking.ErrNotAssignee, "not_assignee", "Order is not assigned to you"},
	{picking.ErrNotCancellable, "not_cancellable", "Order cannot be cancelled in its current state"},
	{picking.ErrPickingClosed, "picking_closed", "Order is already done or cancelled"},
}

func (s *Server) respondRejection(ctx echo.Context, rejection *auth.Rejection) error {
	if s.metrics != nil {
		s.metrics.rejections.WithLabelValues(string(rejection.Reason)).Inc()
	}
	ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, rejection.Challenge)
	if rejection.Reason == auth.ReasonInactiveUser {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: rejection.Detail})
	}
	return ctx.JSON(http.StatusUnauthorized, errorResponse{Detail: rejection.Detail})
}

// respondError maps use case errors to responses. Unknown errors are logged
// and answered with a generic 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var rejection *auth.Rejection
	if errors.As(err, &rejection) {
		return s.respondRejection(ctx, rejection)
	}

	for _, f := range lifecycleFailures {
		if errors.Is(err, f.err) {
			ctx.Response().Header().Set(HeaderErrorReason, f.reason)
			return ctx.JSON(http.StatusNotFound, errorResponse{Detail: f.detail})
		}
	}

	switch {
	case errors.Is(err, errInvalidBody):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: detailInvalidBody})
	case errors.Is(err, accesskey.ErrKeyAlreadyExists):
		return ctx.JSON(http.StatusConflict, errorResponse{Detail: detailLoginConflict})
	case errors.Is(err, commands.ErrReasonIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Reason is required"})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	s.logger.ErrorContext(ctx.Request().Context(), "request failed",
		"error", err,
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
	)
	return ctx.JSON(http.StatusInternalServerError, errorResponse{Detail: detailInternalError})
}
