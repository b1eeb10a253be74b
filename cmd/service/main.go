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
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "bharatloads/internal/app"
	"bharatloads/internal/handlers/rest/bid_delete"
	"bharatloads/internal/handlers/rest/bid_get"
	"bharatloads/internal/handlers/rest/bid_post"
	"bharatloads/internal/handlers/rest/bid_put"
	"bharatloads/internal/handlers/rest/bid_stats_get"
	"bharatloads/internal/handlers/rest/bid_status_put"
	"bharatloads/internal/handlers/rest/bids_get"
	"bharatloads/internal/handlers/rest/bids_search_get"
	"bharatloads/internal/handlers/rest/chat_message_post"
	"bharatloads/internal/handlers/rest/chat_messages_get"
	"bharatloads/internal/handlers/rest/chats_get"
	"bharatloads/internal/handlers/rest/coin_transactions_get"
	"bharatloads/internal/handlers/rest/healthcheck_head"
	"bharatloads/internal/handlers/rest/load_bids_get"
	"bharatloads/internal/handlers/rest/load_delete"
	"bharatloads/internal/handlers/rest/load_get"
	"bharatloads/internal/handlers/rest/load_pause_post"
	"bharatloads/internal/handlers/rest/load_post"
	"bharatloads/internal/handlers/rest/load_put"
	"bharatloads/internal/handlers/rest/load_repost_post"
	"bharatloads/internal/handlers/rest/loads_active_get"
	"bharatloads/internal/handlers/rest/loads_get"
	"bharatloads/internal/handlers/rest/loads_nearby_get"
	"bharatloads/internal/handlers/rest/offers_get"
	"bharatloads/internal/handlers/rest/ping_get"
	"bharatloads/internal/handlers/rest/truck_delete"
	"bharatloads/internal/handlers/rest/truck_get"
	"bharatloads/internal/handlers/rest/truck_pause_post"
	"bharatloads/internal/handlers/rest/truck_post"
	"bharatloads/internal/handlers/rest/truck_put"
	"bharatloads/internal/handlers/rest/truck_rate_post"
	"bharatloads/internal/handlers/rest/truck_ratings_get"
	"bharatloads/internal/handlers/rest/truck_repost_post"
	"bharatloads/internal/handlers/rest/truck_verify_put"
	"bharatloads/internal/handlers/rest/trucks_get"
	"bharatloads/internal/handlers/rest/trucks_nearby_get"
	"bharatloads/internal/pkg/auth"
	"bharatloads/internal/pkg/config"
	"bharatloads/internal/pkg/dotenv"
	"bharatloads/internal/pkg/kafka"
	metrics_system "bharatloads/internal/pkg/metrics"
	"bharatloads/internal/pkg/middlewares/graceful_shutdown"
	"bharatloads/internal/pkg/middlewares/metrics"
	"bharatloads/internal/pkg/middlewares/rate_limiter"
	"bharatloads/internal/pkg/middlewares/timeout"
	"bharatloads/internal/pkg/postgres"
	"bharatloads/internal/pkg/redisclient"
	"bharatloads/internal/repository/geocache"
	"bharatloads/pkg/logger"
	"bharatloads/pkg/logger/zap_adapter"
	"bharatloads/pkg/token_bucket"
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

	mainLog.Info("starting bharatloads application")

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

//nolint:contextcheck // наследование от context.Background() является частью graceful shutdown
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

	// geo-индекс кандидатов опционален: без Redis радиусный поиск
	// идет напрямую по SQL-предикатам.
	var geoIndex *geocache.Index
	if cfg.Redis.Enabled {
		redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()
		geoIndex = geocache.New(redisClient)
	}

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, geoIndex, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
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

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
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

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс игнорируется
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

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware([]byte(cfg.Auth.JWTSecret)))

	api.Handle("/bid", bid_post.New(log, app.ServiceBid)).Methods("POST")
	api.Handle("/bid/{id}", bid_get.New(log, app.ServiceBid)).Methods("GET")
	api.Handle("/bid/{id}", bid_put.New(log, app.ServiceBid)).Methods("PUT")
	api.Handle("/bid/{id}", bid_delete.New(log, app.ServiceBid)).Methods("DELETE")
	api.Handle("/bid/{id}/status", bid_status_put.New(log, app.ServiceBid)).Methods("PUT")
	api.Handle("/bids", bids_get.New(log, app.ServiceBid)).Methods("GET")
	api.Handle("/bids/search", bids_search_get.New(log, app.ServiceBid)).Methods("GET")
	api.Handle("/bids/stats", bid_stats_get.New(log, app.ServiceBid)).Methods("GET")
	api.Handle("/offers", offers_get.New(log, app.ServiceBid)).Methods("GET")

	api.Handle("/load", load_post.New(log, app.ServiceLoad)).Methods("POST")
	api.Handle("/load/{id}", load_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/load/{id}", load_put.New(log, app.ServiceLoad)).Methods("PUT")
	api.Handle("/load/{id}", load_delete.New(log, app.ServiceLoad)).Methods("DELETE")
	api.Handle("/load/{id}/bids", load_bids_get.New(log, app.ServiceBid)).Methods("GET")
	api.Handle("/load/{id}/repost", load_repost_post.New(log, app.ServiceLoad)).Methods("POST")
	api.Handle("/load/{id}/pause", load_pause_post.New(log, app.ServiceLoad)).Methods("POST")
	api.Handle("/loads", loads_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/loads/active", loads_active_get.New(log, app.ServiceLoad)).Methods("GET")
	api.Handle("/loads/nearby", loads_nearby_get.New(log, app.ServiceGeoSearch)).Methods("GET")

	api.Handle("/truck", truck_post.New(log, app.ServiceTruck)).Methods("POST")
	api.Handle("/truck/{id}", truck_get.New(log, app.ServiceTruck)).Methods("GET")
	api.Handle("/truck/{id}", truck_put.New(log, app.ServiceTruck)).Methods("PUT")
	api.Handle("/truck/{id}", truck_delete.New(log, app.ServiceTruck)).Methods("DELETE")
	api.Handle("/truck/{id}/verify", truck_verify_put.New(log, app.ServiceTruck)).Methods("PUT")
	api.Handle("/truck/{id}/repost", truck_repost_post.New(log, app.ServiceTruck)).Methods("POST")
	api.Handle("/truck/{id}/pause", truck_pause_post.New(log, app.ServiceTruck)).Methods("POST")
	api.Handle("/truck/{id}/rate", truck_rate_post.New(log, app.ServiceTruck)).Methods("POST")
	api.Handle("/truck/{id}/ratings", truck_ratings_get.New(log, app.ServiceTruck)).Methods("GET")
	api.Handle("/trucks", trucks_get.New(log, app.ServiceTruck)).Methods("GET")
	api.Handle("/trucks/nearby", trucks_nearby_get.New(log, app.ServiceGeoSearch)).Methods("GET")

	api.Handle("/chats", chats_get.New(log, app.ServiceChat)).Methods("GET")
	api.Handle("/chat/{id}/messages", chat_messages_get.New(log, app.ServiceChat)).Methods("GET")
	api.Handle("/chat/{id}/messages", chat_message_post.New(log, app.ServiceChat)).Methods("POST")

	api.Handle("/coins/transactions", coin_transactions_get.New(log, app.ServiceReward)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
