package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/config"
	"github.com/mmynk/settleup/internal/events"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/scopelock"
	"github.com/mmynk/settleup/internal/service"
	"github.com/mmynk/settleup/internal/storage/sqlite"
	"github.com/mmynk/settleup/pkg/api/settleupv1/settleupv1connect"
	"github.com/mmynk/settleup/pkg/logging"
)

func main() {
	cfg, err := config.Load("app")
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := slog.Default()

	// Initialize SQLite storage (runs migrations)
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	locker, closeLocker, err := newLocker(cfg.Lock)
	if err != nil {
		return err
	}
	defer closeLocker.Close()

	publisher, err := newPublisher(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)

	ledgerSvc := service.NewLedgerService(store,
		service.WithLocker(locker),
		service.WithPublisher(publisher),
		service.WithMetrics(m),
		service.WithLogger(logger),
		service.WithSummaryConcurrency(cfg.Summary.Concurrency),
	)
	authSvc := service.NewAuthService(auth.NewPasswordAuthenticator(store), store, jwtManager, logger)

	mux := http.NewServeMux()

	// Register Connect services
	ledgerPath, ledgerHandler := settleupv1connect.NewLedgerServiceHandler(ledgerSvc,
		connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.RequireAuth(jwtManager),
			middleware.LoggingInterceptor(logger),
		),
		middleware.RecoverPanics(logger),
	)
	mux.Handle(ledgerPath, ledgerHandler)

	authPath, authHandler := settleupv1connect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(
			middleware.MetricsInterceptor(m),
			middleware.OptionalAuth(jwtManager),
			middleware.LoggingInterceptor(logger),
		),
		middleware.RecoverPanics(logger),
	)
	mux.Handle(authPath, authHandler)

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLocker builds the per-scope append lock. The returned closer releases
// any connection the locker holds.
func newLocker(cfg config.LockConfig) (scopelock.Locker, io.Closer, error) {
	switch cfg.Backend {
	case config.LockRedis:
		client := scopelock.NewRedisClient(scopelock.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Using redis scope locks", "addr", cfg.RedisAddr, "ttl", cfg.TTL)
		return scopelock.NewRedisLocker(client, cfg.TTL), client, nil
	default:
		slog.Info("Using in-process scope locks")
		return scopelock.NewKeyedMutex(), nopCloser{}, nil
	}
}

func newPublisher(cfg config.EventsConfig, logger *slog.Logger) (events.Publisher, error) {
	switch cfg.Backend {
	case config.EventsAMQP:
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, cfg.Queue)
		if err != nil {
			return nil, fmt.Errorf("failed to set up event publisher: %w", err)
		}
		slog.Info("Publishing events to AMQP", "exchange", cfg.Exchange, "queue", cfg.Queue)
		return p, nil
	default:
		return events.NewLogPublisher(logger), nil
	}
}

// loggingMiddleware logs all incoming requests at debug level; RPC outcomes
// are logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
