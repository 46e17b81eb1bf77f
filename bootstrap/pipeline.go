package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/laracore/config"
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/events"
	"github.com/kbukum/laracore/logger"
	"github.com/kbukum/laracore/observability"
)

// Bootstrapper is one step of the bootstrap pipeline.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, app *Application) error
}

// BootstrapperFunc adapts a function to Bootstrapper.
type BootstrapperFunc func(ctx context.Context, app *Application) error

// Bootstrap calls f.
func (f BootstrapperFunc) Bootstrap(ctx context.Context, app *Application) error {
	return f(ctx, app)
}

// Container keys of the pipeline steps.
const (
	KeyLoadConfiguration = "bootstrap.load_configuration"
	KeyRegisterProviders = "bootstrap.register_providers"
	KeyBootProviders     = "bootstrap.boot_providers"
)

// Phase is the pipeline's progress. It only moves forward.
type Phase int

const (
	NotBootstrapped Phase = iota
	ConfigLoaded
	ProvidersRegistered
	Booted
)

func (p Phase) String() string {
	switch p {
	case NotBootstrapped:
		return "NotBootstrapped"
	case ConfigLoaded:
		return "ConfigLoaded"
	case ProvidersRegistered:
		return "ProvidersRegistered"
	case Booted:
		return "Booted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type step struct {
	name  string
	key   string
	phase Phase
}

var steps = []step{
	{"LoadConfiguration", KeyLoadConfiguration, ConfigLoaded},
	{"RegisterProviders", KeyRegisterProviders, ProvidersRegistered},
	{"BootProviders", KeyBootProviders, Booted},
}

func (a *Application) bindBootstrappers() {
	a.Bind(KeyLoadConfiguration, func(*container.Container) any { return LoadConfiguration{} })
	a.Bind(KeyRegisterProviders, func(*container.Container) any { return RegisterProviders{} })
	a.Bind(KeyBootProviders, func(*container.Container) any { return BootProviders{} })
}

// Phase returns how far the pipeline has progressed.
func (a *Application) Phase() Phase {
	return a.phase
}

// HasBeenBootstrapped reports whether the whole pipeline has run.
func (a *Application) HasBeenBootstrapped() bool {
	return a.phase == Booted
}

// Bootstrap runs the pipeline steps not yet completed, in order. Once every
// step has succeeded it is a no-op. A failed step leaves the phase at the
// last completed step and is returned as "bootstrap <Step>: <cause>".
func (a *Application) Bootstrap(ctx context.Context) error {
	for _, s := range steps {
		if a.phase >= s.phase {
			continue
		}
		if err := a.runStep(ctx, s); err != nil {
			return fmt.Errorf("bootstrap %s: %w", s.name, err)
		}
	}
	return nil
}

func (a *Application) runStep(ctx context.Context, s step) (err error) {
	ctx, span := observability.StartSpan(ctx, "bootstrap."+s.name,
		trace.WithAttributes(
			attribute.String(observability.AttrStep, s.name),
			attribute.String(observability.AttrBasePath, a.basePath),
		))
	start := time.Now()
	defer func() {
		a.recordStep(ctx, s.name, time.Since(start), err)
		observability.EndSpan(span, err)
	}()

	log := a.log.WithContext(ctx)

	if err := a.dispatch("bootstrapping: " + s.name); err != nil {
		return err
	}

	b, err := container.Resolve[Bootstrapper](a.Container, s.key)
	if err != nil {
		return err
	}
	if err := b.Bootstrap(ctx, a); err != nil {
		log.Error("bootstrap step failed", logger.ErrorFields(s.name, err))
		return err
	}

	a.phase = s.phase
	span.SetAttributes(attribute.String(observability.AttrPhase, s.phase.String()))
	log.WithFields(logger.Fields(logger.FieldPhase, s.phase.String())).
		Info("bootstrap step complete", logger.DurationFields(s.name, time.Since(start)))

	return a.dispatch("bootstrapped: " + s.name)
}

// dispatch fires a lifecycle event when a dispatcher is bound.
func (a *Application) dispatch(event string) error {
	d, ok := container.TryResolve[*events.Dispatcher](a.Container, container.KeyEvents)
	if !ok {
		return nil
	}
	return d.Dispatch(event, a)
}

// recordStep records the step duration once the metrics instruments exist.
func (a *Application) recordStep(ctx context.Context, name string, d time.Duration, err error) {
	if !a.Bound(container.KeyMetrics) {
		return
	}
	if m, ok := container.TryResolve[*observability.Metrics](a.Container, container.KeyMetrics); ok {
		m.RecordStep(ctx, name, d, err)
	}
}

// LoadConfiguration reads the environment file and the config directory into
// the repository bound as "config", reusing a pre-bound repository.
type LoadConfiguration struct{}

// Bootstrap implements Bootstrapper.
func (LoadConfiguration) Bootstrap(ctx context.Context, app *Application) error {
	fs := app.Filesystem()

	exported, err := config.LoadEnvFile(fs, app.EnvironmentFilePath())
	if err != nil {
		return err
	}

	repo := app.Config()
	if repo == nil {
		repo = config.NewRepository(nil)
	}
	if err := config.LoadDirectory(fs, app.ConfigPath(), repo); err != nil {
		return err
	}
	repo.BindAppEnv()

	settings, err := repo.AppSettings()
	if err != nil {
		return err
	}
	app.Instance(container.KeyConfig, repo)

	app.log.WithContext(ctx).Debug("configuration loaded", logger.Fields(
		logger.FieldEnv, settings.Env,
		"env_exported", len(exported),
		"providers", len(settings.Providers),
	))
	return nil
}

// RegisterProviders registers the providers listed in app.providers.
type RegisterProviders struct{}

// Bootstrap implements Bootstrapper.
func (RegisterProviders) Bootstrap(_ context.Context, app *Application) error {
	return app.RegisterConfiguredProviders()
}

// BootProviders boots the registered providers.
type BootProviders struct{}

// Bootstrap implements Bootstrapper.
func (BootProviders) Bootstrap(_ context.Context, app *Application) error {
	return app.Boot()
}
