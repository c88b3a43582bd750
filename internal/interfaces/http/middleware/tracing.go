package middleware

import (
	"net/http"

	"github.com/finstatements/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts a server span per request with otelgin. Health checks are
// not traced.
func Tracing(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health" && r.URL.Path != "/ready"
		}),
	)
}

// SpanAttributes enriches the request span once the handler chain has run:
// procedure, request and user identifiers, and an error status for
// 4xx/5xx answers. Place it after Tracing and before Auth.
func SpanAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		if procedure := ProcedureName(c); procedure != "" {
			span.SetAttributes(telemetry.AttrProcedure.String(procedure))
		}
		if id := GetRequestID(c); id != "" {
			span.SetAttributes(attribute.String("request.id", id))
		}
		if userID, ok := GetAuthUserID(c); ok {
			span.SetAttributes(attribute.String("user.id", userID.String()))
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}
		desc := http.StatusText(status)
		if code := c.GetString(ErrorCodeKey); code != "" {
			desc = code
			span.SetAttributes(telemetry.AttrErrorCode.String(code))
		}
		span.SetStatus(codes.Error, desc)
	}
}
