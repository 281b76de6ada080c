package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"dispatch/internal/core/application/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"
)

const principalKey = "principal"

// requireScopes authorizes the request through the gateway and stores the
// principal for the handler.
func (s *Server) requireScopes(scopes ...auth.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)

			var principal auth.Principal
			err := s.run(ctx.Request().Context(), func(runCtx context.Context) error {
				var authErr error
				principal, authErr = s.gateway.Authorize(runCtx, header, scopes)
				return authErr
			})
			if err != nil {
				return s.respondError(ctx, err)
			}

			ctx.Set(principalKey, principal)
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	p, ok := ctx.Get(principalKey).(auth.Principal)
	return p, ok && p.Identity != nil
}

func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	})
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.WarnContext(ctx.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

// tokenRateLimit limits login attempts per client IP. A limit <= 0 disables it.
func tokenRateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 5 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.JSON(http.StatusForbidden, errorResponse{Detail: "Client cannot be identified"})
		},
		// The memory store denies with a nil error once a client's bucket is empty.
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return ctx.JSON(http.StatusTooManyRequests, errorResponse{Detail: "Too many login attempts"})
		},
	})
}
