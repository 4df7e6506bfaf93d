package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request. The route template is logged
// instead of the raw path so booking and quote ids do not explode the log
// cardinality; the request_id ties each line to the service-level events.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		log.Printf("[HTTP] request_id=%s method=%s route=%s status=%d bytes=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			route,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
