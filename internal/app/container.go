package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"toyworks-orders/internal/config"
	"toyworks-orders/internal/http/handlers"
	"toyworks-orders/internal/http/middleware/ratelimit"
	"toyworks-orders/internal/http/pprofserver"
	"toyworks-orders/internal/http/router"
	"toyworks-orders/internal/logx"
	"toyworks-orders/internal/repository"
	"toyworks-orders/internal/service/dispatch"
	"toyworks-orders/internal/service/intake"
	"toyworks-orders/internal/service/item"
	"toyworks-orders/internal/service/orders"
	"toyworks-orders/internal/service/party"
	"toyworks-orders/internal/transport/kafka"
)

type overdueCheckInterval time.Duration

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the intake worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildBase(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildBase(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the intake worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		func(cfg *config.Config) overdueCheckInterval {
			return overdueCheckInterval(cfg.Orders.OverdueCheckInterval)
		},
		provideMetrics,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewPartyRepo,
		repository.NewItemRepo,
		func() time.Duration { return 3 * time.Second },
		func(
			repo *repository.OrderRepo,
			items *repository.ItemRepo,
			parties *repository.PartyRepo,
			logger logx.Logger,
			timeout time.Duration,
		) *orders.Service {
			return orders.NewService(repo, items, parties, logger, timeout)
		},
		func(
			repo *repository.OrderRepo,
			logger logx.Logger,
			timeout time.Duration,
			counters dispatch.Counters,
		) *dispatch.Service {
			return dispatch.NewService(repo, logger, timeout, counters)
		},
		func(repo *repository.PartyRepo, timeout time.Duration) *party.Service {
			return party.NewService(repo, timeout)
		},
		func(repo *repository.ItemRepo, timeout time.Duration) *item.Service {
			return item.NewService(repo, timeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	routerProvider := func(
		logger logx.Logger,
		cfg *config.Config,
		base *handlers.Handlers,
		orderH *handlers.OrderHandler,
		dispatchH *handlers.DispatchHandler,
		partyH *handlers.PartyHandler,
		itemH *handlers.ItemHandler,
		rl *ratelimit.Middleware,
	) http.Handler {
		return router.New(router.Deps{
			Logger:    logger,
			Base:      base,
			Orders:    orderH,
			Dispatch:  dispatchH,
			Parties:   partyH,
			Items:     itemH,
			RateLimit: rl.Handler(),
			Pprof:     pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass},
		})
	}
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		handlers.NewPartyUsecase,
		handlers.NewPartyHandler,
		handlers.NewItemUsecase,
		handlers.NewItemHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *orders.Service, logger logx.Logger) *intake.Processor {
			return intake.NewProcessor(svc, logger)
		},
		func(p *intake.Processor) kafka.HandleFunc {
			return p.Handle
		},
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}
