package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httptransport "github.com/zaer/hr-service/internal/api/http"
	"github.com/zaer/hr-service/internal/api/http/handlers"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/broker"
	"github.com/zaer/hr-service/internal/config"
	"github.com/zaer/hr-service/internal/events"
	"github.com/zaer/hr-service/internal/observability"
	"github.com/zaer/hr-service/internal/persistence"
	"github.com/zaer/hr-service/internal/repository"
	"github.com/zaer/hr-service/internal/service"
	"github.com/zaer/hr-service/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()
	store := redis.Cache()

	dispatcher := events.NewInMemoryDispatcher()

	var publisher broker.Publisher
	if cfg.Broker.URL != "" {
		rabbit, err := broker.NewRabbitPublisher(cfg.Broker.URL, cfg.Broker.Exchange, cfg.Broker.RoutingPrefix)
		if err != nil {
			logger.Fatal("failed to connect broker", zap.Error(err))
		}
		defer rabbit.Close() //nolint:errcheck
		publisher = rabbit
		logger.Info("publishing events", zap.String("exchange", cfg.Broker.Exchange))
	}

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)

	authService := service.NewAuthService(*cfg, repository.NewAccountRepository(pool))
	lookupService := service.NewLookupService(repository.NewLookupRepository(pool), store, logger)
	orgService := service.NewOrgService(repository.NewOrgUnitRepository(pool), store, logger)
	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo: employeeRepo,
		Cache:        store,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	dependentsService := service.NewDependentsService(service.DependentsDependencies{
		ChildRepo:         repository.NewChildRepository(pool),
		AddressRepo:       repository.NewAddressRepository(pool),
		ContactPersonRepo: repository.NewContactPersonRepository(pool),
	})
	terminationService := service.NewTerminationService(service.TerminationDependencies{
		TerminationRepo: repository.NewTerminationRepository(pool),
		EmployeeRepo:    employeeRepo,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})

	relay := worker.NewEventRelay(dispatcher, publisher, store, logger, 0)
	relayDone := worker.StartEventRelay(ctx, relay)

	checks := map[string]handlers.Check{
		"postgres": pg.Ping,
	}
	if redis.Enabled() {
		checks["redis"] = redis.Ping
	}
	if publisher != nil {
		checks["broker"] = func(context.Context) error { return publisher.Ping() }
	}

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareOptions{
		RequestTimeout: cfg.App.RequestTimeout(),
		CORSOrigins:    cfg.App.CORSOrigins,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		APIPrefix: cfg.App.APIPrefix,
		Health: handlers.NewHealthHandler(handlers.AppInfo{
			Name:        cfg.App.Name,
			Version:     cfg.App.Version,
			Description: cfg.App.Description,
		}, checks, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Lookups:        handlers.NewLookupHandler(lookupService),
		Org:            handlers.NewOrgHandler(orgService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Dependents:     handlers.NewDependentsHandler(dependentsService),
		Terminations:   handlers.NewTerminationsHandler(terminationService),
		AuthMiddleware: auth.NewAuthMiddleware(auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		return app.Listen(cfg.App.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", zap.Error(err))
	}
	stop()
	<-relayDone
}
