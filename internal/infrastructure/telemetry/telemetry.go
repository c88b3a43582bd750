// Package telemetry sets up OpenTelemetry tracing, metrics and log export and
// Pyroscope continuous profiling. Every provider degrades to a no-op when its
// feature is disabled, so callers never need to check configuration.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/finstatements/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// ServiceVersion is reported on every exported signal
var ServiceVersion = "dev"

const shutdownTimeout = 10 * time.Second

// Attribute keys shared by spans and metrics
const (
	AttrProcedure  = attribute.Key("rpc.procedure")
	AttrCompanyID  = attribute.Key("company.id")
	AttrStatement  = attribute.Key("report.statement")
	AttrFormat     = attribute.Key("report.format")
	AttrErrorCode  = attribute.Key("error.code")
	AttrHTTPStatus = attribute.Key("http.response.status_code")
)

// DurationBuckets are histogram boundaries in seconds for RPC latencies.
// Statement exports with PDF rendering reach the upper buckets.
var DurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Config is the telemetry section of the application configuration
type Config = config.TelemetryConfig

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func shutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, shutdownTimeout)
}
