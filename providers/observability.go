package providers

import (
	"context"

	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/observability"
	"github.com/kbukum/laracore/provider"
	"github.com/kbukum/laracore/version"
)

// bootObserver is implemented by the application, which forwards to its
// provider registry.
type bootObserver interface {
	AfterBoot(fn func(provider.Provider))
}

// ObservabilityServiceProvider installs the OpenTelemetry providers
// configured in the "observability" section and instruments the container.
//
// The telemetry instance is bound as "telemetry"; it implements io.Closer so
// closing the container shuts the exporters down.
type ObservabilityServiceProvider struct{ provider.Base }

// Register binds "telemetry" and "metrics".
func (p *ObservabilityServiceProvider) Register(c *container.Container) error {
	c.Singleton(container.KeyTelemetry, func(c *container.Container) (any, error) {
		cfg, err := observabilityConfig(c)
		if err != nil {
			return nil, err
		}
		return observability.Setup(context.Background(), cfg)
	})
	c.Singleton(container.KeyMetrics, func(c *container.Container) (any, error) {
		if _, err := c.Make(container.KeyTelemetry); err != nil {
			return nil, err
		}
		return observability.NewMetrics(observability.Meter(observability.TracerName))
	})
	return nil
}

// Boot installs the exporters and starts counting resolutions and boots.
func (p *ObservabilityServiceProvider) Boot(c *container.Container) error {
	m, err := container.Resolve[*observability.Metrics](c, container.KeyMetrics)
	if err != nil {
		return err
	}
	m.InstrumentContainer(c)
	if app, ok := container.TryResolve[bootObserver](c, container.KeyApp); ok {
		app.AfterBoot(func(booted provider.Provider) {
			m.RecordBoot(context.Background(), provider.ClassOf(booted))
		})
	}
	return nil
}

func observabilityConfig(c *container.Container) (observability.Config, error) {
	repo := repository(c)

	cfg := observability.DefaultConfig(repo.GetString("app.name"))
	cfg.ServiceVersion = version.Version
	if env := repo.GetString("app.env"); env != "" {
		cfg.Environment = env
	}
	if err := repo.Unmarshal("observability", &cfg); err != nil {
		return cfg, errors.InvalidConfig("observability", "cannot decode section").WithCause(err)
	}
	return cfg, nil
}
