package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/metrics"
)

// Metrics records request durations labelled by method, route template and status
func Metrics(m *metrics.Metrics, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(timeProvider.Since(start).Seconds())
	}
}
