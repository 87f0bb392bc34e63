package http_init

import (
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	http_cors_middleware "github.com/kkcodebase/movie-mood-predictor/internal/delivery/http/middleware/cors"
	http_metrics_middleware "github.com/kkcodebase/movie-mood-predictor/internal/delivery/http/middleware/metrics"
	http_recovery_middleware "github.com/kkcodebase/movie-mood-predictor/internal/delivery/http/middleware/recovery"
	"github.com/kkcodebase/movie-mood-predictor/internal/metrics"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

func NewControllerPool(logger *slog.Logger, m metrics.Provider, metricsEnabled bool) *ControllerPool {
	engine := gin.New()
	engine.Use(
		http_recovery_middleware.New(logger),
		http_cors_middleware.New(),
		http_metrics_middleware.New(m),
	)

	if metricsEnabled {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	rg := engine.Group(apiPrefix)
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Engine() *gin.Engine {
	return pool.engine
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}
