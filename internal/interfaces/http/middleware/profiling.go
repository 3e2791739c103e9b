package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/grafana/pyroscope-go"
)

// Pyroscope label keys set by ProfilingLabels
const (
	ProfilingLabelRoute  = "route"
	ProfilingLabelMethod = "method"
)

// ProfilingLabels tags profile samples taken while serving a request with
// its route pattern and method. Unmatched paths and the health endpoints
// are left unlabelled to keep label cardinality bounded.
func ProfilingLabels() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || route == "/health" || route == "/ready" {
			c.Next()
			return
		}
		labels := pyroscope.Labels(ProfilingLabelRoute, route, ProfilingLabelMethod, c.Request.Method)
		pyroscope.TagWrapper(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
