package observability

import (
	"context"
	stderrors "errors"
	"sync"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/laracore/errors"
)

// Telemetry owns the tracer and meter providers installed by Setup.
// Either provider may be nil when disabled.
type Telemetry struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider

	once sync.Once
	err  error
}

// Setup validates cfg and installs the enabled providers globally. A
// disabled configuration yields an empty Telemetry.
func Setup(ctx context.Context, cfg Config) (*Telemetry, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.InvalidConfig("observability", err.Error()).WithCause(err)
	}

	t := &Telemetry{}
	if !cfg.Enabled {
		return t, nil
	}

	if cfg.Tracing {
		tp, err := InitTracer(ctx, cfg)
		if err != nil {
			return nil, err
		}
		t.Tracer = tp
	}
	if cfg.Metrics {
		mp, err := InitMeter(ctx, cfg)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, err
		}
		t.Meter = mp
	}
	return t, nil
}

// Enabled reports whether any provider was installed.
func (t *Telemetry) Enabled() bool {
	return t.Tracer != nil || t.Meter != nil
}

// Shutdown flushes and stops the providers. It runs once; later calls
// return the first result.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.once.Do(func() {
		var errs []error
		if t.Tracer != nil {
			errs = append(errs, t.Tracer.Shutdown(ctx))
		}
		if t.Meter != nil {
			errs = append(errs, t.Meter.Shutdown(ctx))
		}
		t.err = stderrors.Join(errs...)
	})
	return t.err
}

// Close implements io.Closer so the container can release the providers.
func (t *Telemetry) Close() error {
	return t.Shutdown(context.Background())
}
