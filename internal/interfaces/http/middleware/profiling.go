package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/grafana/pyroscope-go"
)

// ProfilingLabels tags CPU samples taken while a procedure runs with its
// name, so flame graphs can be split per procedure
func ProfilingLabels(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		procedure := ProcedureName(c)
		if !enabled || procedure == "" {
			c.Next()
			return
		}
		pyroscope.TagWrapper(c.Request.Context(), pyroscope.Labels("procedure", procedure), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
