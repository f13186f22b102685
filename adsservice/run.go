package adsservice

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/api"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/config"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/factory"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/health"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/logger"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/services"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Run starts the ads service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("ads-service")

	cfg, err := config.New(log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	return Serve(ctx, cfg, log, nil)
}

// Serve runs the service with an explicit config until ctx is cancelled.
// When ln is nil the server listens on cfg.HTTPPort.
func Serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, ln net.Listener) error {
	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()

	svcHealth := startHealthCheckers(ctx, cfg, log, st)

	router := api.NewRouter(services.NewAdService(st), svcHealth, api.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	}, log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, ln, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// startHealthCheckers starts the store checker and the service-level aggregator.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store) *health.ServiceHealthChecker {
	checkTimeout := time.Duration(cfg.HealthCheckTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	storeChecker := store.NewStoreHealthChecker(st, log, checkTimeout)
	// first check synchronously so /api/health is accurate from the start
	storeChecker.Check(ctx)
	go storeChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, storeChecker)
	svcHealth.Evaluate()
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, ln net.Listener, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if ln != nil {
			log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server starting")
			err = server.Serve(ln)
		} else {
			log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve: %w", err)
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
