package middleware

import (
	"time"

	"github.com/finstatements/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// RPCMetrics records call count, failures and latency of every procedure
func RPCMetrics(m *telemetry.RPCMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		procedure := ProcedureName(c)
		if procedure == "" || m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		m.Observe(c.Request.Context(), procedure, c.Writer.Status(), c.GetString(ErrorCodeKey), time.Since(start))
	}
}
