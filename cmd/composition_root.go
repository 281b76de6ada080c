package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/workerpool"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	settings   auth.Settings
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *auth.TokenService
	pool       *workerpool.Pool
	registry   *prometheus.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, settings auth.Settings, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &CompositionRoot{
		config:     config,
		settings:   settings,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, config.BotUserID),
		tokens:     auth.NewTokenService(settings),
		pool:       workerpool.New(config.WorkerPoolSize, config.BackendTxTimeout),
		registry:   registry,
		logger:     logger,
	}
}

// Pool is the worker pool shared by every backend call.
func (c *CompositionRoot) Pool() *workerpool.Pool {
	return c.pool
}

func (c *CompositionRoot) authUoWFactory() auth.UoWFactory {
	return FuncAuthUoWFactory(func() auth.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func(actor kernel.ObjectID) commands.OrderUoW {
		return c.uowFactory.CreateAs(actor)
	})
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func(actor kernel.ObjectID) queries.ReadUoW {
		return c.uowFactory.CreateAs(actor)
	})
}

func (c *CompositionRoot) accessKeyBroker() auth.AccessKeyBroker {
	return auth.NewAccessKeyBroker(c.authUoWFactory(), c.settings)
}

func (c *CompositionRoot) CreateIssueTokenCommandHandler() commands.IssueTokenCommandHandler {
	return commands.NewIssueTokenCommandHandler(
		auth.NewCredentialVerifier(c.authUoWFactory()),
		c.accessKeyBroker(),
		c.tokens,
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDropOffOrderCommandHandler() commands.DropOffOrderCommandHandler {
	return commands.NewDropOffOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReapAccessKeysCommandHandler() commands.ReapAccessKeysCommandHandler {
	var f commands.AccessKeyUoWFactory = FuncAccessKeyUoWFactory(func() commands.AccessKeyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReapAccessKeysCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetUserStatsQueryHandler() queries.GetUserStatsQueryHandler {
	return queries.NewGetUserStatsQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler()
}

// CreateHTTPServer wires the HTTP adapter. The gateway resolves keys through
// the same broker that issues them at login.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		IssueToken:  c.CreateIssueTokenCommandHandler(),
		AcceptOrder: c.CreateAcceptOrderCommandHandler(),
		DropOff:     c.CreateDropOffOrderCommandHandler(),
		CancelOrder: c.CreateCancelOrderCommandHandler(),
		CancelJob:   c.CreateCancelJobCommandHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		UserStats:   c.CreateGetUserStatsQueryHandler(),
		Profile:     c.CreateGetProfileQueryHandler(),
	}
	gateway := auth.NewGateway(c.tokens, c.accessKeyBroker())
	return httpin.NewServer(handlers, gateway, c.pool, httpin.NewMetrics(c.registry), c.logger)
}

func (c *CompositionRoot) RouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		TokenRateLimit: c.config.TokenRateLimit,
		TokenBurst:     c.config.TokenRateBurst,
		Gatherer:       c.registry,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reaper := jobs.NewAccessKeyReaperJob(
		c.CreateReapAccessKeysCommandHandler(),
		c.config.KeyReaperSchedule,
		c.settings.APIKeyName(),
		c.settings.TokenTTL(),
		c.config.BackendTxTimeout,
		c.logger,
	)
	return jobs.NewJobManager(reaper)
}

type FuncAuthUoWFactory func() auth.UoW

func (f FuncAuthUoWFactory) Create() auth.UoW {
	return f()
}

type FuncOrderUoWFactory func(actor kernel.ObjectID) commands.OrderUoW

func (f FuncOrderUoWFactory) CreateAs(actor kernel.ObjectID) commands.OrderUoW {
	return f(actor)
}

type FuncReadUoWFactory func(actor kernel.ObjectID) queries.ReadUoW

func (f FuncReadUoWFactory) CreateAs(actor kernel.ObjectID) queries.ReadUoW {
	return f(actor)
}

type FuncAccessKeyUoWFactory func() commands.AccessKeyUoW

func (f FuncAccessKeyUoWFactory) Create() commands.AccessKeyUoW {
	return f()
}
