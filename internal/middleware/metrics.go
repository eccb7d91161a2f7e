package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"swiperent/prometheus"
)

// Metrics records request counts and latencies per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		prometheus.RequestCounter.WithLabelValues(c.Request.Method, path, status).Inc()
		prometheus.RequestDurationHistogram.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}
