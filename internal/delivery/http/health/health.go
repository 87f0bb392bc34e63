package http_health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	startTime time.Time
}

func New() *Controller {
	return &Controller{
		startTime: time.Now(),
	}
}

func (c *Controller) RegisterRoot(engine *gin.Engine) {
	engine.GET("/healthz", c.health)
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": time.Since(c.startTime).Seconds(),
	})
}
