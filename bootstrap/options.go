package bootstrap

import (
	"github.com/spf13/afero"

	"github.com/kbukum/laracore/config"
	"github.com/kbukum/laracore/logger"
)

// Option configures the Application during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to Application.
type appOptions struct {
	appPath         string
	databasePath    string
	storagePath     string
	environmentFile string
	manifest        string
	instanceID      string
	fs              afero.Fs
	logger          *logger.Logger
	config          *config.Repository
	skipBootstrap   bool
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAppPath overrides the application source directory (default basePath/src).
func WithAppPath(path string) Option {
	return func(o *appOptions) {
		o.appPath = path
	}
}

// WithDatabasePath overrides the database directory (default basePath/database).
func WithDatabasePath(path string) Option {
	return func(o *appOptions) {
		o.databasePath = path
	}
}

// WithStoragePath overrides the storage directory (default basePath/storage).
func WithStoragePath(path string) Option {
	return func(o *appOptions) {
		o.storagePath = path
	}
}

// WithEnvironmentFile sets the environment file name, relative to the base
// path (default ".env").
func WithEnvironmentFile(file string) Option {
	return func(o *appOptions) {
		o.environmentFile = file
	}
}

// WithManifest sets the package manifest used for namespace detection
// (default "composer.json").
func WithManifest(file string) Option {
	return func(o *appOptions) {
		o.manifest = file
	}
}

// WithFilesystem sets the filesystem bound as "files". Configuration, the
// environment file and the manifest are read through it.
// If not set, the OS filesystem is used.
func WithFilesystem(fs afero.Fs) Option {
	return func(o *appOptions) {
		o.fs = fs
	}
}

// WithLogger sets a custom logger for the application and binds it as "log".
// If not set, the global logger is used until the log provider replaces it.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithConfig pre-seeds the configuration repository. Config files are still
// merged into it by LoadConfiguration.
func WithConfig(repo *config.Repository) Option {
	return func(o *appOptions) {
		o.config = repo
	}
}

// WithInstanceID pins the instance ID instead of generating one. The value
// must be a non-nil UUID.
func WithInstanceID(id string) Option {
	return func(o *appOptions) {
		o.instanceID = id
	}
}

// WithoutBootstrap constructs the application without running the
// pipeline, so bootstrappers can be rebound first. Call Bootstrap to run it.
func WithoutBootstrap() Option {
	return func(o *appOptions) {
		o.skipBootstrap = true
	}
}
