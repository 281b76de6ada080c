package http

import (
	"context"
	"errors"
	"net/http"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	detailIncorrectCredentials = "Incorrect username or password"
	detailCannotAuthenticate   = "Cannot authenticate user. Please contact administrator."
)

// IssueToken logs a user in.
//
//	@Summary	Log in and get a bearer token
//	@Tags		auth
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		username	formData	string	true	"Backend login"
//	@Param		password	formData	string	true	"Backend password"
//	@Param		scope		formData	string	false	"Space separated scopes"
//	@Success	200			{object}	tokenResponse
//	@Failure	401			{object}	errorResponse
//	@Failure	409			{object}	errorResponse
//	@Failure	429			{object}	errorResponse
//	@Router		/token [post]
func (s *Server) IssueToken(ctx echo.Context) error {
	cmd, err := commands.NewIssueTokenCommand(
		ctx.FormValue("username"),
		ctx.FormValue("password"),
		auth.ParseScopes(ctx.FormValue("scope")),
		0,
	)
	if errors.Is(err, errs.ErrValueIsRequired) {
		return s.respondLoginFailure(ctx, detailIncorrectCredentials)
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	var token auth.BearerToken
	err = s.run(ctx.Request().Context(), func(runCtx context.Context) error {
		var handleErr error
		token, handleErr = s.handlers.IssueToken.Handle(runCtx, cmd)
		return handleErr
	})
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return s.respondLoginFailure(ctx, detailIncorrectCredentials)
	case errors.Is(err, auth.ErrCannotAuthenticate):
		return s.respondLoginFailure(ctx, detailCannotAuthenticate)
	case err != nil:
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{AccessToken: token.Raw, TokenType: auth.TokenType})
}

func (s *Server) respondLoginFailure(ctx echo.Context, detail string) error {
	ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return ctx.JSON(http.StatusUnauthorized, errorResponse{Detail: detail})
}
