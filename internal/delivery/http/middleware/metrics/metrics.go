package http_metrics_middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type RequestMetrics interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
}

func New(m RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		m.IncRequestsTotal(endpoint, c.Writer.Status())
		m.ObserveRequestDuration(endpoint, time.Since(start))
	}
}
