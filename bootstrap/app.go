package bootstrap

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/kbukum/laracore/config"
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/encryption"
	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/events"
	"github.com/kbukum/laracore/logger"
	"github.com/kbukum/laracore/observability"
	"github.com/kbukum/laracore/provider"
	"github.com/kbukum/laracore/providers"
	"github.com/kbukum/laracore/validation"
	"github.com/kbukum/laracore/version"
)

// Application is a container that owns the provider lifecycle and knows the
// layout of the project it runs in.
//
// Make, Bind, Call and the rest of the container API are promoted from the
// embedded Container. Registration and boot are expected from one goroutine.
type Application struct {
	*container.Container

	registry   *provider.Registry
	log        *logger.Logger
	instanceID uuid.UUID

	basePath        string
	appPath         string
	databasePath    string
	storagePath     string
	environmentFile string
	manifest        string
	namespace       *string

	phase        Phase
	bootingFired bool

	bootingCallbacks     []func(*Application)
	bootedCallbacks      []func(*Application)
	terminatingCallbacks []Hook
	terminated           bool
}

// New creates an application rooted at basePath and runs the bootstrap
// pipeline. An empty basePath means the working directory.
//
// Bootstrap failures are returned as "bootstrap <Step>: <cause>" with the
// cause preserved for errors.As.
func New(basePath string, opts ...Option) (*Application, error) {
	o := resolveOptions(opts)

	instanceID := uuid.New()
	if o.instanceID != "" {
		id, err := validation.ValidateUUID("instance_id", o.instanceID)
		if err != nil {
			return nil, err
		}
		instanceID = id
	}

	a := &Application{
		Container:       container.New(),
		instanceID:      instanceID,
		environmentFile: ".env",
		manifest:        "composer.json",
	}
	a.registry = provider.NewRegistry(a.Container)

	l := o.logger
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	a.SetLogger(l)

	if basePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Internal(err)
		}
		basePath = wd
	}
	a.SetBasePath(basePath)
	if o.appPath != "" {
		a.UseAppPath(o.appPath)
	}
	if o.databasePath != "" {
		a.UseDatabasePath(o.databasePath)
	}
	if o.storagePath != "" {
		a.UseStoragePath(o.storagePath)
	}
	if o.environmentFile != "" {
		a.UseEnvironmentFile(o.environmentFile)
	}
	if o.manifest != "" {
		a.manifest = o.manifest
	}

	a.registerBaseBindings(o)
	if err := a.registerBaseServiceProviders(); err != nil {
		return nil, err
	}
	a.registerCoreContainerAliases()
	a.bindBootstrappers()

	a.log.Debug("application created", logger.Fields(
		logger.FieldBasePath, a.basePath,
		"version", a.Version(),
	))

	if o.skipBootstrap {
		return a, nil
	}
	if err := a.Bootstrap(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}

// SetLogger replaces the logger used by the application, its container and
// its provider registry.
func (a *Application) SetLogger(l *logger.Logger) {
	a.Container.SetLogger(l)
	a.registry.SetLogger(l)
	a.log = l.WithComponent("app").WithFields(logger.Fields(logger.FieldInstanceID, a.instanceID.String()))
}

// registerBaseBindings binds the application itself and the services the
// pipeline needs before any provider runs.
func (a *Application) registerBaseBindings(o *appOptions) {
	container.SetInstance(a.Container)

	a.Instance(container.KeyApp, a)
	a.Instance(container.KeyContainer, a.Container)

	fs := o.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	a.Instance(container.KeyFiles, fs)

	if o.config != nil {
		a.Instance(container.KeyConfig, o.config)
	}
	if o.logger != nil {
		a.Instance(container.KeyLog, o.logger)
	}
}

func (a *Application) registerBaseServiceProviders() error {
	_, err := a.Register(&providers.EventServiceProvider{}, false)
	return err
}

// coreAliases maps each core key to the type keys that resolve to it.
var coreAliases = []struct {
	key     string
	aliases []string
}{
	{container.KeyApp, []string{container.KeyOf[*Application]()}},
	{container.KeyContainer, []string{container.KeyOf[*container.Container]()}},
	{container.KeyConfig, []string{container.KeyOf[*config.Repository]()}},
	{container.KeyEvents, []string{container.KeyOf[*events.Dispatcher]()}},
	{container.KeyFiles, []string{container.KeyOf[afero.Fs]()}},
	{container.KeyLog, []string{container.KeyOf[*logger.Logger]()}},
	{container.KeyEncrypter, []string{container.KeyOf[*encryption.Service]()}},
	{container.KeyTelemetry, []string{container.KeyOf[*observability.Telemetry]()}},
	{container.KeyMetrics, []string{container.KeyOf[*observability.Metrics]()}},
}

func (a *Application) registerCoreContainerAliases() {
	for _, entry := range coreAliases {
		for _, alias := range entry.aliases {
			a.Alias(entry.key, alias)
		}
	}
}

// Filesystem returns the filesystem bound as "files".
func (a *Application) Filesystem() afero.Fs {
	if fs, ok := container.TryResolve[afero.Fs](a.Container, container.KeyFiles); ok {
		return fs
	}
	return afero.NewOsFs()
}

// Config returns the bound configuration repository, or nil before
// LoadConfiguration has run.
func (a *Application) Config() *config.Repository {
	repo, _ := container.TryResolve[*config.Repository](a.Container, container.KeyConfig)
	return repo
}

// Logger returns the application logger.
func (a *Application) Logger() *logger.Logger {
	return a.log
}

// InstanceID identifies this application instance in logs.
func (a *Application) InstanceID() uuid.UUID {
	return a.instanceID
}

// Version returns the framework version.
func (a *Application) Version() string {
	return version.GetShortVersion()
}
