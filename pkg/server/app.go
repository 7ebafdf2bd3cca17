package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GodSignal/internal/service/ratelimit"
	"GodSignal/pkg/config"
	xhttp "GodSignal/pkg/http"
	applogger "GodSignal/pkg/logger"
)

const (
	limiterSweepEvery = time.Minute
	limiterIdleAfter  = 10 * time.Minute
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	limiter    *ratelimit.Limiter
}

// New creates a new App instance with all dependencies. limiter may be nil.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	httpServer *xhttp.Server,
	limiter *ratelimit.Limiter,
) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		limiter:    limiter,
	}
}

// Run starts the HTTP server and blocks until ctx is done or an interrupt arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return fmt.Errorf("start http server: %w", err)
	}
	a.log.Info("godsignal started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("engine", a.cfg.Engine.BaseURL),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Duration("refresh_ms", a.cfg.Refresh.Interval),
	)

	if a.limiter != nil {
		go a.sweepLimiter(ctx)
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.log.Info("shutdown signal received", applogger.String("signal", sig.String()))
	case <-ctx.Done():
		a.log.Info("context cancelled, shutting down")
	}
	cancel()
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server within the configured grace period.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}

// sweepLimiter drops idle client buckets so the limiter does not grow without bound.
func (a *App) sweepLimiter(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.limiter.Sweep(limiterIdleAfter); n > 0 {
				a.log.Debug("rate limiter swept", applogger.Int("buckets", n), applogger.Int("remaining", a.limiter.Len()))
			}
		}
	}
}
