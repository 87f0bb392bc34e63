package http_cors_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// New sets the cross-origin headers on every response and answers
// preflight requests directly.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "OPTIONS,POST,GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
