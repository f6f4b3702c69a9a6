package observability

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware returns a Gin middleware that records request counts
// and latencies. The route template is used as the label so path
// parameters do not explode cardinality.
func MetricsMiddleware(mp *MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		mp.RecordHTTPRequest(
			c.Request.Context(),
			c.Request.Method,
			route,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
