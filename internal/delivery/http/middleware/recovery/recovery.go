package http_recovery_middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// New converts an escaped panic into a 500 with the error message in the
// body. Expected collaborator failures never reach this point; only truly
// unanticipated errors do.
func New(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("unhandled error",
					slog.String("path", c.Request.URL.Path),
					slog.String("error", fmt.Sprint(r)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprint(r),
				})
			}
		}()

		c.Next()
	}
}
