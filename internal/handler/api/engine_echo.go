package api

import (
	"encoding/json"
	"sort"
	"time"

	models "EconPulse/internal/domain/models"
	icache "EconPulse/internal/service/cache"
	"EconPulse/internal/service/metrics"
	"EconPulse/internal/service/ratelimit"
	"EconPulse/internal/services/analytics"
	"EconPulse/internal/usecase"
	xhttp "EconPulse/pkg/http"
	xlogger "EconPulse/pkg/logger"
	"EconPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

// EngineEchoHandler exposes the aggregation engine over HTTP.
type EngineEchoHandler struct {
	logger *xlogger.Logger
	engine *usecase.Engine
	cache  icache.BytesCache
	rl     *ratelimit.Limiter

	responseTTL time.Duration
}

func NewEngineEchoHandler(logger *xlogger.Logger, engine *usecase.Engine) *EngineEchoHandler {
	metrics.Register()
	return &EngineEchoHandler{
		logger:      logger,
		engine:      engine,
		rl:          ratelimit.New(),
		responseTTL: time.Minute,
	}
}

// SetCache enables response caching for batch and snapshot endpoints.
func (h *EngineEchoHandler) SetCache(c icache.BytesCache) { h.cache = c }

func (h *EngineEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/snapshot", h.Snapshot)
	g.GET("/batch", h.Batch)
	g.GET("/correlate", h.Correlate)
	g.GET("/correlate/matrix", h.Matrix)
	g.GET("/compare", h.Compare)
	g.GET("/cache/stats", h.CacheStats)
}

func (h *EngineEchoHandler) Snapshot(c echo.Context) error {
	start := time.Now()
	endpoint := "snapshot"
	defer func() { metrics.EngineLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.SnapshotRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 10, 5) {
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	cacheKey := icache.Key("snapshot", req.Entity)
	if b, ok := h.cached(cacheKey); ok {
		return c.JSONBlob(200, b)
	}

	snap, err := h.engine.GetEntitySnapshot(c.Request().Context(), req.Entity)
	if err != nil {
		metrics.EngineErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("snapshot usecase error", xlogger.Error(err))
		return xhttp.NotFoundResponse(c, err.Error())
	}
	h.store(cacheKey, snap)
	return xhttp.SuccessResponse(c, snap)
}

func (h *EngineEchoHandler) Batch(c echo.Context) error {
	start := time.Now()
	endpoint := "batch"
	defer func() { metrics.EngineLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.BatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	codes := util.SplitCodes(req.Entities)
	if len(codes) == 0 {
		return xhttp.BadRequestResponse(c, "entities required")
	}

	cacheKey := icache.Key("batch", req.Indicator, req.Entities, req.Ranked)
	if b, ok := h.cached(cacheKey); ok {
		return c.JSONBlob(200, b)
	}

	batch := h.engine.GetBatch(c.Request().Context(), codes, req.Indicator)
	if req.Ranked {
		ranked := usecase.RankBatch(batch, codes)
		h.store(cacheKey, ranked)
		return xhttp.SuccessResponse(c, ranked)
	}
	h.store(cacheKey, batch)
	return xhttp.SuccessResponse(c, batch)
}

func (h *EngineEchoHandler) Correlate(c echo.Context) error {
	start := time.Now()
	endpoint := "correlate"
	defer func() { metrics.EngineLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CorrelateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	window := util.ParseIntDefault(c.QueryParam("window"), 0)
	res, err := h.engine.Correlate(c.Request().Context(),
		usecase.SeriesSpec{Entity: req.EntityA, Indicator: req.IndicatorA},
		usecase.SeriesSpec{Entity: req.EntityB, Indicator: req.IndicatorB},
		window,
	)
	if err != nil {
		metrics.EngineErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("correlate usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *EngineEchoHandler) Matrix(c echo.Context) error {
	start := time.Now()
	endpoint := "matrix"
	defer func() { metrics.EngineLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.MatrixRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":"+endpoint, 5, 2) {
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	codes := util.SplitCodes(req.Entities)
	if len(codes) < 2 {
		return xhttp.BadRequestResponse(c, "at least two entities required")
	}

	cacheKey := icache.Key("matrix", req.Indicator, req.Entities)
	if b, ok := h.cached(cacheKey); ok {
		return c.JSONBlob(200, b)
	}

	matrix, errs := h.engine.CorrelateMatrix(c.Request().Context(), codes, req.Indicator)
	if len(errs) > 0 {
		metrics.EngineErrors.WithLabelValues(endpoint).Inc()
	}

	type cell struct {
		A           string  `json:"a"`
		B           string  `json:"b"`
		Correlation float64 `json:"correlation"`
	}
	cells := make([]cell, 0, len(matrix))
	for k, v := range matrix {
		cells = append(cells, cell{A: k.A, B: k.B, Correlation: v})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].A != cells[j].A {
			return cells[i].A < cells[j].A
		}
		return cells[i].B < cells[j].B
	})

	res := map[string]any{"pairs": cells}
	if len(errs) > 0 {
		res["errors"] = errs
	}
	h.store(cacheKey, res)
	return xhttp.SuccessResponse(c, res)
}

func (h *EngineEchoHandler) Compare(c echo.Context) error {
	start := time.Now()
	endpoint := "compare"
	defer func() { metrics.EngineLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.engine.Compare(c.Request().Context(),
		usecase.SeriesSpec{Entity: req.EntityA, Indicator: req.IndicatorA},
		usecase.SeriesSpec{Entity: req.EntityB, Indicator: req.IndicatorB},
		analytics.DateRange{From: req.FromA, To: req.ToA},
		analytics.DateRange{From: req.FromB, To: req.ToB},
	)
	if err != nil {
		metrics.EngineErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("compare usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *EngineEchoHandler) CacheStats(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.engine.CacheStats())
}

func (h *EngineEchoHandler) cached(key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	b, ok, err := h.cache.GetBytes(key)
	if err != nil {
		h.logger.Warn("response cache get error", xlogger.Error(err))
		return nil, false
	}
	return b, ok
}

func (h *EngineEchoHandler) store(key string, v any) {
	if h.cache == nil {
		return
	}
	b, err := json.Marshal(xhttp.APIResponse{Status: 200, Message: "OK", Data: v})
	if err != nil {
		return
	}
	if err := h.cache.SetBytes(key, b, h.responseTTL); err != nil {
		h.logger.Warn("response cache set error", xlogger.Error(err))
	}
}
