package di

import (
	"fmt"

	"GodSignal/internal/domain/repository"
	"GodSignal/internal/handler/api"
	"GodSignal/internal/handler/ws"
	"GodSignal/internal/service/engine"
	"GodSignal/internal/service/feargreed"
	"GodSignal/internal/service/ratelimit"
	"GodSignal/internal/usecase"
	"GodSignal/pkg/config"
	xhttp "GodSignal/pkg/http"
	"GodSignal/pkg/http/middleware"
	pkgkafka "GodSignal/pkg/kafka"
	"GodSignal/pkg/logger"
	"GodSignal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogPublisher creates the Kafka producer used for log digests.
// It returns nil when log shipping is disabled.
func ProvideLogPublisher(cfg *config.Config) (*pkgkafka.Producer, func(), error) {
	if !cfg.LogShipping.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.LogShipping.Brokers),
		pkgkafka.WithClientID("godsignal-"+cfg.Environment),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, func() { _ = producer.Close() }, nil
}

// ProvideLogger builds the application logger and attaches the digest
// collector when a publisher is available. Cleanup flushes pending digests.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*logger.Logger, func(), error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if producer == nil {
		return l, func() {}, nil
	}

	l.AddCollector(&logger.CollectionConfig{
		TimeInterval:   cfg.LogShipping.FlushInterval,
		CountThreshold: cfg.LogShipping.CountThreshold,
		Topic:          cfg.LogShipping.Topic,
		Publisher:      producer,
	})
	return l, l.RemoveCollector, nil
}

func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(cfg *config.Config, reg *prometheus.Registry) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return repository.NopMetrics{}
	}
	return metrics.New(reg)
}

func ProvideHTTPMetrics(cfg *config.Config, reg *prometheus.Registry) *middleware.HTTPMetrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return middleware.NewHTTPMetrics(reg)
}

func ProvideEngineSource(cfg *config.Config, l *logger.Logger, m repository.Metrics) repository.EngineSource {
	return engine.NewClient(cfg, l.With(logger.String("component", "engine")), m)
}

func ProvideSentimentSource(cfg *config.Config, l *logger.Logger, m repository.Metrics) repository.SentimentSource {
	return feargreed.NewClient(cfg, l.With(logger.String("component", "feargreed")), m)
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
}

func ProvidePagesHandler(l *logger.Logger, pages *usecase.PageUseCase) *api.PagesHandler {
	return api.NewPagesHandler(l, pages)
}

func ProvideLiveHandler(cfg *config.Config, l *logger.Logger, pages *usecase.PageUseCase) *ws.LiveHandler {
	return ws.NewLiveHandler(l.With(logger.String("component", "live")), pages, cfg.Refresh.Interval)
}

func ProvideHandlers(pages *api.PagesHandler, live *ws.LiveHandler) xhttp.Handler {
	return xhttp.Handlers{pages, live}
}

// ProvideHTTPServer creates the echo server with the configured middleware.
func ProvideHTTPServer(
	cfg *config.Config,
	l *logger.Logger,
	handler xhttp.Handler,
	reg *prometheus.Registry,
	hm *middleware.HTTPMetrics,
	limiter *ratelimit.Limiter,
) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(cfg.Metrics.Path, reg, hm))
	}
	// A nil *Limiter must not reach the middleware as a non-nil interface.
	if limiter != nil {
		opts = append(opts, xhttp.WithRateLimit(limiter))
	}
	return xhttp.NewServer(handler, opts...)
}
