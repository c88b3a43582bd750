package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// RPCMetrics counts RPC procedure calls, their failures and latency
type RPCMetrics struct {
	requests *Counter
	failures *Counter
	duration *Histogram
}

// NewRPCMetrics registers the RPC instruments on mp
func NewRPCMetrics(mp *MeterProvider) (*RPCMetrics, error) {
	meter := mp.Meter("finstatements/rpc")
	requests, err := NewCounter(meter, "rpc.server.requests", "RPC procedure calls", "{request}")
	if err != nil {
		return nil, err
	}
	failures, err := NewCounter(meter, "rpc.server.failures", "RPC procedure calls answered with an error", "{request}")
	if err != nil {
		return nil, err
	}
	duration, err := NewHistogram(meter, "rpc.server.duration", "RPC procedure latency", "s", DurationBuckets)
	if err != nil {
		return nil, err
	}
	return &RPCMetrics{requests: requests, failures: failures, duration: duration}, nil
}

// Observe records one finished call. errorCode is empty on success.
func (m *RPCMetrics) Observe(ctx context.Context, procedure string, status int, errorCode string, elapsed time.Duration) {
	attrs := []attribute.KeyValue{AttrProcedure.String(procedure), AttrHTTPStatus.Int(status)}
	m.requests.Inc(ctx, attrs...)
	m.duration.RecordDuration(ctx, elapsed, AttrProcedure.String(procedure))
	if errorCode != "" {
		m.failures.Inc(ctx, AttrProcedure.String(procedure), AttrErrorCode.String(errorCode))
	}
}
