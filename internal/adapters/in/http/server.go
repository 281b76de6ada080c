// Package http exposes the dispatch gateway over HTTP with echo.
//
// Every route except /token and the operational endpoints is protected by
// the auth gateway. Handlers and the gateway's backend lookups run on the
// bounded worker pool so that the number of concurrent backend
// transactions never exceeds the pool size.
package http

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/workerpool"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	IssueToken  commands.IssueTokenCommandHandler
	AcceptOrder commands.AcceptOrderCommandHandler
	DropOff     commands.DropOffOrderCommandHandler
	CancelOrder commands.CancelOrderCommandHandler
	CancelJob   commands.CancelJobCommandHandler
	ListOrders  queries.ListOrdersQueryHandler
	UserStats   queries.GetUserStatsQueryHandler
	Profile     queries.GetProfileQueryHandler
}

// Server implements the HTTP handlers and coordinates them with the auth
// gateway and the worker pool.
type Server struct {
	handlers Handlers
	gateway  auth.Gateway
	pool     *workerpool.Pool
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a server. metrics may be nil.
func NewServer(
	handlers Handlers,
	gateway auth.Gateway,
	pool *workerpool.Pool,
	metrics *Metrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		gateway:  gateway,
		pool:     pool,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

// run executes fn on the worker pool.
func (s *Server) run(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.pool.Do(ctx, fn)
}
