package usecase

import (
	"context"
	"time"

	"EconPulse/internal/domain/models"
	drepo "EconPulse/internal/domain/repository"
	icache "EconPulse/internal/service/cache"
	"EconPulse/internal/service/freshness"
	applogger "EconPulse/pkg/logger"
)

// Options tune the engine's fetch and fan-out behavior.
type Options struct {
	FetchTimeout time.Duration // per network fetch
	IndicatorTTL time.Duration // long-horizon statistical series
	QuoteTTL     time.Duration // market quote / fx series
	BatchWorkers int           // fan-out concurrency bound
}

func (o *Options) applyDefaults() {
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 12 * time.Second
	}
	if o.IndicatorTTL <= 0 {
		o.IndicatorTTL = 24 * time.Hour
	}
	if o.QuoteTTL <= 0 {
		o.QuoteTTL = time.Hour
	}
	if o.BatchWorkers <= 0 {
		o.BatchWorkers = 8
	}
}

// Engine is the aggregation orchestrator: it owns the cache-first fetch
// chain (cache -> live -> fallback -> stamp), the multi-entity fan-out and
// the analytics composition. One explicitly constructed instance is shared
// by all callers; there is no implicit global.
type Engine struct {
	profiles drepo.Profiles
	stats    drepo.SourceAdapter
	quotes   drepo.SourceAdapter
	fallback drepo.SourceAdapter
	cache    *icache.Store
	fresh    *freshness.Evaluator
	metrics  drepo.Metrics
	l        *applogger.Logger
	opts     Options
}

func NewEngine(
	profiles drepo.Profiles,
	stats, quotes, fallback drepo.SourceAdapter,
	cache *icache.Store,
	fresh *freshness.Evaluator,
	metrics drepo.Metrics,
	l *applogger.Logger,
	opts Options,
) *Engine {
	opts.applyDefaults()
	return &Engine{
		profiles: profiles,
		stats:    stats,
		quotes:   quotes,
		fallback: fallback,
		cache:    cache,
		fresh:    fresh,
		metrics:  metrics,
		l:        l,
		opts:     opts,
	}
}

// GetSeries runs the per-(entity, indicator) pipeline. Adapter failures are
// absorbed into the result's freshness status; the only hard error is an
// unknown entity code.
func (e *Engine) GetSeries(ctx context.Context, code, indicator string) (*models.SeriesResult, error) {
	start := time.Now()
	defer func() { e.metrics.RecordLatency("get_series", time.Since(start).Seconds()) }()

	profile, err := e.profiles.Get(code)
	if err != nil {
		return nil, err
	}
	indicator = drepo.NormalizeIndicator(indicator)

	key := icache.Key(code, indicator)
	if v, ok := e.cache.Get(key); ok {
		e.metrics.RecordCacheHit(indicator)
		res := v.(models.SeriesResult)
		res.Freshness.SourceKind = models.SourceCache
		return &res, nil
	}
	e.metrics.RecordCacheMiss(indicator)

	points, kind := e.fetch(ctx, profile, indicator)
	res := models.SeriesResult{
		Points:    points,
		Freshness: e.fresh.Evaluate(points, kind),
	}

	// Error-status results are never cached so the next caller retries.
	if res.Freshness.Status != models.StatusError {
		e.cache.Set(key, res, e.ttlFor(indicator))
	}
	if last, ok := res.Latest(); ok {
		e.metrics.RecordLatestValue(code, indicator, last.Value)
	}
	return &res, nil
}

// fetch tries the primary adapter, then the fallback. Transport errors and
// empty results are equivalent here: both mean "try the next source".
func (e *Engine) fetch(ctx context.Context, profile models.EntityProfile, indicator string) ([]models.Point, models.SourceKind) {
	primary := e.stats
	source := "worldbank"
	if drepo.IsMarketIndicator(indicator) {
		primary = e.quotes
		source = "quotes"
	}

	fctx, cancel := context.WithTimeout(ctx, e.opts.FetchTimeout)
	defer cancel()

	points, err := primary.Fetch(fctx, profile, indicator)
	if err == nil && len(points) > 0 {
		e.metrics.RecordFetch(source, indicator)
		return points, models.SourceLive
	}
	if err != nil {
		e.metrics.RecordError("live_fetch")
		e.l.Warn("live fetch failed, using fallback",
			applogger.String("entity", profile.Code),
			applogger.String("indicator", indicator),
			applogger.Error(err))
	}

	points, err = e.fallback.Fetch(ctx, profile, indicator)
	if err != nil {
		e.metrics.RecordError("fallback_fetch")
		e.l.Error("fallback fetch failed",
			applogger.String("entity", profile.Code),
			applogger.String("indicator", indicator),
			applogger.Error(err))
		return nil, models.SourceFallback
	}
	e.metrics.RecordFetch("fallback", indicator)
	return points, models.SourceFallback
}

func (e *Engine) ttlFor(indicator string) time.Duration {
	if drepo.IsMarketIndicator(indicator) {
		return e.opts.QuoteTTL
	}
	return e.opts.IndicatorTTL
}

// CacheStats exposes the shared store's counters for introspection.
func (e *Engine) CacheStats() icache.Stats { return e.cache.Stats() }

// indicatorsFor lists the indicators the entity's profile can serve.
func indicatorsFor(profile models.EntityProfile) []string {
	inds := []string{models.IndicatorCPI, models.IndicatorGDP}
	if profile.IndexSymbol != "" {
		inds = append(inds, models.IndicatorIndex)
	}
	if profile.FXSymbol != "" {
		inds = append(inds, models.IndicatorFX)
	}
	return inds
}
