package http

import (
	"context"
	"net/http"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// GetProfile returns the caller's backend profile.
//
//	@Summary	Current user
//	@Tags		users
//	@Produce	json
//	@Security	OAuth2Password[me_profile]
//	@Success	200	{object}	profileResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/users/me/ [get]
func (s *Server) GetProfile(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return s.respondError(ctx, errNoPrincipal)
	}

	query, err := queries.NewGetProfileQuery(principal.Identity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	profile, err := s.handlers.Profile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// GetUserStats returns the caller's delivery counters.
//
//	@Summary	Current user statistics
//	@Tags		users
//	@Produce	json
//	@Security	OAuth2Password[me_profile]
//	@Success	200	{object}	statsResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/users/stats/ [get]
func (s *Server) GetUserStats(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return s.respondError(ctx, errNoPrincipal)
	}

	query, err := queries.NewGetUserStatsQuery(principal.Identity)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var stats services.UserStats
	err = s.run(ctx.Request().Context(), func(runCtx context.Context) error {
		var handleErr error
		stats, handleErr = s.handlers.UserStats.Handle(runCtx, query)
		return handleErr
	})
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, newStatsResponse(stats))
}
