package http

import (
	"net/http"

	"dispatch/internal/core/application/auth"

	// Registers the OpenAPI document served by echo-swagger.
	_ "dispatch/internal/adapters/in/http/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig tunes the operational parts of the router.
type RouterConfig struct {
	// TokenRateLimit is the number of login attempts per second allowed per
	// client IP. Zero disables the limit.
	TokenRateLimit float64
	TokenBurst     int
	// Gatherer backs /metrics. Nil hides the endpoint.
	Gatherer prometheus.Gatherer
}

// NewEcho builds the echo instance serving the API.
func NewEcho(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestID())
	e.Use(requestLogger(s.logger))
	e.Use(middleware.Recover())
	if s.metrics != nil {
		e.Use(s.metrics.Middleware())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/token", s.IssueToken, tokenRateLimit(cfg.TokenRateLimit, cfg.TokenBurst))

	users := e.Group("/users", s.requireScopes(auth.ScopeMeProfile))
	users.GET("/me/", s.GetProfile)
	users.GET("/stats/", s.GetUserStats)

	e.GET("/orders/", s.ListOrders, s.requireScopes(auth.ScopeOrdersList))

	orders := e.Group("/orders/:id", s.requireScopes(auth.ScopeOrdersPost))
	orders.POST("/accept", s.AcceptOrder)
	orders.POST("/drop-off", s.DropOffOrder)
	orders.POST("/cancel-order", s.CancelOrder)
	orders.POST("/cancel-job", s.CancelJob)

	return e
}
