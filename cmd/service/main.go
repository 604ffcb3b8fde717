package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "courier-ledger/internal/app"
	"courier-ledger/internal/handlers/rest/deliveries_available_get"
	"courier-ledger/internal/handlers/rest/deliveries_me_get"
	"courier-ledger/internal/handlers/rest/deliveries_me_metrics_get"
	"courier-ledger/internal/handlers/rest/delivery_accept_put"
	"courier-ledger/internal/handlers/rest/delivery_get"
	"courier-ledger/internal/handlers/rest/delivery_status_put"
	"courier-ledger/internal/handlers/rest/healthcheck_head"
	"courier-ledger/internal/handlers/rest/ping_get"
	"courier-ledger/internal/handlers/rest/rule_history_get"
	"courier-ledger/internal/handlers/rest/rule_put"
	"courier-ledger/internal/handlers/rest/rules_get"
	"courier-ledger/internal/handlers/rest/withdraw_request_post"
	"courier-ledger/internal/handlers/rest/withdraw_request_review_put"
	"courier-ledger/internal/handlers/rest/withdraw_requests_admin_get"
	"courier-ledger/internal/handlers/rest/withdraw_requests_me_get"
	"courier-ledger/internal/pkg/config"
	"courier-ledger/internal/pkg/dotenv"
	"courier-ledger/internal/pkg/grpcclient"
	"courier-ledger/internal/pkg/kafka"
	metrics_system "courier-ledger/internal/pkg/metrics"
	"courier-ledger/internal/pkg/middlewares/auth"
	"courier-ledger/internal/pkg/middlewares/graceful_shutdown"
	"courier-ledger/internal/pkg/middlewares/metrics"
	"courier-ledger/internal/pkg/middlewares/rate_limiter"
	"courier-ledger/internal/pkg/middlewares/rbac"
	"courier-ledger/internal/pkg/middlewares/timeout"
	"courier-ledger/internal/pkg/migrations"
	"courier-ledger/internal/pkg/postgres"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/logger/zap_adapter"
	"courier-ledger/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/casbin/casbin/v2"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting courier-ledger application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsAutoApply {
		if err := migrations.Up(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.NotificationService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return fmt.Errorf("rbac: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// фоновые задачи живут до stopOngoingGracefully, чтобы релей не бросал пачку на SIGTERM
	businessApp, err := application.InitializeApplication(ongoingCtx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, enforcer, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()
	runLog.Info("background workers stopped")

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	enforcer *casbin.Enforcer,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	limiter := token_bucket.NewKeyedLimiter(cfg.Server.RateLimiterCapacity, float64(cfg.Server.RateLimiterRefill))

	deliveries := router.PathPrefix("/deliveries").Subrouter()
	deliveries.Use(auth.Middleware(log, auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)))
	deliveries.Use(rbac.Middleware(log, enforcer))
	deliveries.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterCapacity, limiter))

	// статические пути регистрируются раньше /deliveries/{id}
	deliveries.Handle("/available", deliveries_available_get.New(log, app.ServiceDelivery)).Methods("GET")
	deliveries.Handle("/me", deliveries_me_get.New(log, app.ServiceDelivery)).Methods("GET")
	deliveries.Handle("/me/metrics", deliveries_me_metrics_get.New(log, app.ServiceEarnings)).Methods("GET")

	deliveries.Handle("/me/withdraw-requests", withdraw_request_post.New(log, app.ServiceWithdrawal)).Methods("POST")
	deliveries.Handle("/me/withdraw-requests", withdraw_requests_me_get.New(log, app.ServiceWithdrawal)).Methods("GET")
	deliveries.Handle("/admin/withdraw-requests", withdraw_requests_admin_get.New(log, app.ServiceWithdrawal)).Methods("GET")
	deliveries.Handle("/admin/withdraw-requests/{id}", withdraw_request_review_put.New(log, app.ServiceWithdrawal)).Methods("PUT")

	deliveries.Handle("/admin/rules", rules_get.New(log, app.ServiceRules)).Methods("GET")
	deliveries.Handle("/admin/rules/{key}", rule_put.New(log, app.ServiceRules)).Methods("PUT")
	deliveries.Handle("/admin/rules/{key}/history", rule_history_get.New(log, app.ServiceRules)).Methods("GET")

	deliveries.Handle("/{id}/accept", delivery_accept_put.New(log, app.ServiceDelivery)).Methods("PUT")
	deliveries.Handle("/{id}/status", delivery_status_put.New(log, app.ServiceDelivery)).Methods("PUT")
	deliveries.Handle("/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
