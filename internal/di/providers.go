package di

import (
	"fmt"

	drepo "EconPulse/internal/domain/repository"
	"EconPulse/internal/handler/api"
	icache "EconPulse/internal/service/cache"
	"EconPulse/internal/service/fallback"
	"EconPulse/internal/service/freshness"
	"EconPulse/internal/service/profiles"
	"EconPulse/internal/service/quotes"
	"EconPulse/internal/service/worldbank"
	"EconPulse/internal/usecase"
	"EconPulse/pkg/config"
	xhttp "EconPulse/pkg/http"
	applogger "EconPulse/pkg/logger"
	"EconPulse/pkg/metrics"
	"EconPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Logging.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Logging.Output
	if output == "" {
		output = "stdout"
	}
	l, err := applogger.New(&applogger.Config{Level: level, Format: format, Output: output})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideProfiles loads the static entity reference data.
func ProvideProfiles(cfg *config.Config) (drepo.Profiles, error) {
	reg, err := profiles.Load(cfg.Profiles.Path)
	if err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	return reg, nil
}

// ProvideCacheStore creates the shared series cache and starts its janitor.
func ProvideCacheStore(cfg *config.Config) *icache.Store {
	store := icache.NewStore()
	if cfg.Engine.SweepInterval > 0 {
		store.StartJanitor(cfg.Engine.SweepInterval)
	}
	return store
}

// ProvideFreshness creates the freshness evaluator.
func ProvideFreshness() *freshness.Evaluator {
	return freshness.New()
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideWorldBank creates the statistical indicator adapter.
func ProvideWorldBank(cfg *config.Config) *worldbank.Client {
	return worldbank.New(cfg.WorldBank.BaseURL, cfg.WorldBank.Timeout, cfg.WorldBank.YearsBack)
}

// ProvideQuotes creates the market quote adapter.
func ProvideQuotes(cfg *config.Config) *quotes.Client {
	return quotes.New(cfg.Quotes.BaseURL, cfg.Quotes.Timeout, cfg.Quotes.Interval, cfg.Quotes.Range, cfg.Quotes.MaxRPS)
}

// ProvideFallback creates the bundled dataset adapter.
func ProvideFallback(cfg *config.Config) *fallback.Store {
	return fallback.New(cfg.Fallback.Dir)
}

// ProvideEngine wires the aggregation orchestrator.
func ProvideEngine(
	reg drepo.Profiles,
	wb *worldbank.Client,
	q *quotes.Client,
	fb *fallback.Store,
	store *icache.Store,
	fresh *freshness.Evaluator,
	m drepo.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Engine {
	return usecase.NewEngine(reg, wb, q, fb, store, fresh, m, l, usecase.Options{
		FetchTimeout: cfg.Engine.FetchTimeout,
		IndicatorTTL: cfg.Engine.IndicatorTTL,
		QuoteTTL:     cfg.Engine.QuoteTTL,
		BatchWorkers: cfg.Engine.BatchWorkers,
	})
}

// ProvideHTTPHandler creates the engine API handler with optional response caching.
func ProvideHTTPHandler(cfg *config.Config, l *applogger.Logger, engine *usecase.Engine, store *icache.Store) xhttp.Handler {
	h := api.NewEngineEchoHandler(l, engine)
	if cfg.ResponseCache.Enabled {
		switch cfg.ResponseCache.Backend {
		case "redis":
			h.SetCache(icache.NewRedisCache(icache.RedisConfig{
				Addr:     cfg.ResponseCache.Redis.Addr,
				Password: cfg.ResponseCache.Redis.Password,
				DB:       cfg.ResponseCache.Redis.DB,
			}))
		default:
			h.SetCache(store)
		}
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler xhttp.Handler,
	store *icache.Store,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, handler, store, l)
}
