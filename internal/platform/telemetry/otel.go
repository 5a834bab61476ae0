// Package telemetry wires OpenTelemetry tracing and metrics for the quotes
// API. Prometheus counters of the application layer are separate and served
// on /-/metrics.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const shutdownTimeout = 5 * time.Second

// Config holds telemetry configuration.
type Config struct {
	Enabled bool

	// Endpoint is the collector URL. http:// selects a plaintext gRPC
	// connection, https:// a TLS one.
	Endpoint     string
	ServiceName  string
	Version      string
	Environment  string
	SamplingRate float64
}

// Provider owns the SDK providers installed as globals by New.
type Provider struct {
	shutdowns []func(context.Context) error
}

// collector is the parsed form of Config.Endpoint.
type collector struct {
	hostPort string
	insecure bool
}

func parseEndpoint(endpoint string) (collector, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return collector{}, fmt.Errorf("parsing telemetry endpoint: %w", err)
	}

	switch u.Scheme {
	case "http":
		return collector{hostPort: u.Host, insecure: true}, nil
	case "https":
		return collector{hostPort: u.Host}, nil
	default:
		return collector{}, fmt.Errorf("telemetry endpoint %q: scheme must be http or https", endpoint)
	}
}

// New exports spans and metrics over OTLP/gRPC and installs the providers
// and the W3C propagator globally. Disabled telemetry returns an empty
// Provider and leaves the no-op globals in place.
func New(ctx context.Context, cfg *Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}

	target, err := parseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tracerProvider, err := newTracerProvider(ctx, target, res, cfg.SamplingRate)
	if err != nil {
		return nil, err
	}

	meterProvider, err := newMeterProvider(ctx, target, res)
	if err != nil {
		_ = tracerProvider.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	// clients.Client injects with the same propagator.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{
		shutdowns: []func(context.Context) error{tracerProvider.Shutdown, meterProvider.Shutdown},
	}, nil
}

func newTracerProvider(ctx context.Context, target collector, res *resource.Resource, rate float64) (*trace.TracerProvider, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(target.hostPort)}
	if target.insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	return trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(rate))),
	), nil
}

func newMeterProvider(ctx context.Context, target collector, res *resource.Resource) (*metric.MeterProvider, error) {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(target.hostPort)}
	if target.insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter)),
	), nil
}

// Shutdown flushes pending spans and metrics, waiting at most five seconds.
func (p *Provider) Shutdown(ctx context.Context) error {
	if len(p.shutdowns) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	errs := make([]error, 0, len(p.shutdowns))
	for _, shutdown := range p.shutdowns {
		errs = append(errs, shutdown(ctx))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("telemetry shutdown: %w", err)
	}

	return nil
}
