package middleware

import (
	"strconv"

	"osteria-backend/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts every request by method and status class (2xx/4xx/...).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := strconv.Itoa(c.Writer.Status()/100) + "xx"
		metrics.IncHTTPRequest(c.Request.Method, status)
	}
}
