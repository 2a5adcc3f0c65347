package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	meterName          = "github.com/JerelRocktaschel/jumpshot"
	defaultServiceName = "jumpshot"
	otlpPushInterval   = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup builds a meter provider that is always scraped through Prometheus and, when an
// endpoint is set, also pushed over OTLP/HTTP. Disabled telemetry yields an in-memory
// Recorder, a nil handler and a no-op shutdown.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	readers, handler, err := buildReaders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("metrics: resource: %w", err)
	}

	opts := make([]sdkmetric.Option, 0, len(readers)+1)
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}
	opts = append(opts, sdkmetric.WithResource(res))
	provider := sdkmetric.NewMeterProvider(opts...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, fmt.Errorf("metrics: instruments: %w", err)
	}
	return newRecorder(inst), handler, provider.Shutdown, nil
}

func buildReaders(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Reader, http.Handler, error) {
	promReader, handler, err := promReaderFactory()
	if err != nil {
		return nil, nil, fmt.Errorf("metrics: prometheus exporter: %w", err)
	}
	readers := []sdkmetric.Reader{promReader}
	if cfg.OtlpEndpoint == "" {
		return readers, handler, nil
	}
	otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics: otlp exporter: %w", err)
	}
	return append(readers, otlpReader), handler, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushInterval)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// otelInstruments mirrors Recorder counts into OpenTelemetry. Gateway instruments are
// keyed by route template; upstream instruments by operation kind and outcome.
type otelInstruments struct {
	gatewayRequests   metric.Int64Counter
	gatewayDuration   metric.Float64Histogram
	upstreamRequests  metric.Int64Counter
	upstreamFailures  metric.Int64Counter
	upstreamDurations metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)
	inst := &otelInstruments{}
	var err error

	if inst.gatewayRequests, err = meter.Int64Counter("jumpshot_gateway_requests_total",
		metric.WithDescription("Gateway requests by route and status.")); err != nil {
		return nil, err
	}
	if inst.gatewayDuration, err = meter.Float64Histogram("jumpshot_gateway_request_duration",
		metric.WithDescription("Gateway request latency."), metric.WithUnit("ms")); err != nil {
		return nil, err
	}
	if inst.upstreamRequests, err = meter.Int64Counter("jumpshot_upstream_requests_total",
		metric.WithDescription("Requests sent to NBA hosts by operation and outcome.")); err != nil {
		return nil, err
	}
	if inst.upstreamFailures, err = meter.Int64Counter("jumpshot_upstream_failures_total",
		metric.WithDescription("Operations that returned an error, including decode failures.")); err != nil {
		return nil, err
	}
	if inst.upstreamDurations, err = meter.Float64Histogram("jumpshot_upstream_duration",
		metric.WithDescription("Round trip time to NBA hosts."), metric.WithUnit("ms")); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	ctx := context.Background()
	o.gatewayRequests.Add(ctx, 1, attrs)
	o.gatewayDuration.Record(ctx, milliseconds(duration), attrs)
}

func (o *otelInstruments) recordUpstreamCall(operation, outcome string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	kv := []attribute.KeyValue{attribute.String(AttrOperation, operation)}
	if outcome != "" {
		kv = append(kv, attribute.String(AttrOutcome, outcome))
	}
	attrs := metric.WithAttributes(kv...)
	ctx := context.Background()
	o.upstreamRequests.Add(ctx, 1, attrs)
	o.upstreamDurations.Record(ctx, milliseconds(duration), attrs)
	if err != nil {
		o.upstreamFailures.Add(ctx, 1, attrs)
	}
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
