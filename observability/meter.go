package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/logger"
)

// Metric names emitted by the framework.
const (
	MetricResolutions   = "container.resolutions"
	MetricStepDuration  = "bootstrap.step.duration"
	MetricProviderBoots = "provider.boots"
)

// InitMeter installs a periodic OTLP/HTTP meter provider as the global
// provider. The returned provider must be shut down on application exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the framework's metric instruments.
type Metrics struct {
	resolutions  metric.Int64Counter
	stepDuration metric.Float64Histogram
	boots        metric.Int64Counter
}

// NewMetrics creates the framework instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolutions, err := meter.Int64Counter(MetricResolutions,
		metric.WithDescription("Number of container resolutions by abstract"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricResolutions, err)
	}

	stepDuration, err := meter.Float64Histogram(MetricStepDuration,
		metric.WithDescription("Duration of bootstrap steps in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricStepDuration, err)
	}

	boots, err := meter.Int64Counter(MetricProviderBoots,
		metric.WithDescription("Number of provider boots"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricProviderBoots, err)
	}

	return &Metrics{resolutions: resolutions, stepDuration: stepDuration, boots: boots}, nil
}

// RecordResolution counts one resolution of abstract.
func (m *Metrics) RecordResolution(ctx context.Context, abstract string) {
	m.resolutions.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrAbstract, abstract)))
}

// RecordStep records the duration and outcome of a bootstrap step.
func (m *Metrics) RecordStep(ctx context.Context, step string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.stepDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String(AttrStep, step),
		attribute.String("status", status),
	))
}

// RecordBoot counts one provider boot.
func (m *Metrics) RecordBoot(ctx context.Context, provider string) {
	m.boots.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrProvider, provider)))
}

// InstrumentContainer counts every resolution made through c.
func (m *Metrics) InstrumentContainer(c *container.Container) {
	c.AfterResolving(func(abstract string, _ any) {
		m.RecordResolution(context.Background(), abstract)
	})
}
