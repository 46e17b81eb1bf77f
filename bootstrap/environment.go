package bootstrap

import (
	"os"
	"path"

	"github.com/kbukum/laracore/config"
)

// Environments with dedicated helpers.
const (
	EnvLocal      = "local"
	EnvProduction = "production"
	EnvTesting    = "testing"
)

// EnvironmentFile returns the environment file name (default ".env").
func (a *Application) EnvironmentFile() string {
	if a.environmentFile == "" {
		return ".env"
	}
	return a.environmentFile
}

// UseEnvironmentFile sets the environment file name, relative to the base path.
func (a *Application) UseEnvironmentFile(file string) *Application {
	a.environmentFile = file
	return a
}

// EnvironmentFilePath returns the full path of the environment file.
func (a *Application) EnvironmentFilePath() string {
	return a.BasePath(a.EnvironmentFile())
}

// Environment returns the current environment, taken from app.env.
func (a *Application) Environment() string {
	if repo := a.Config(); repo != nil {
		if env := repo.GetString("app.env"); env != "" {
			return env
		}
	}
	return config.DefaultEnv
}

// EnvironmentIs reports whether the current environment matches any of the
// patterns, which may use shell globs such as "prod*".
func (a *Application) EnvironmentIs(patterns ...string) bool {
	env := a.Environment()
	for _, p := range patterns {
		if ok, err := path.Match(p, env); err == nil && ok {
			return true
		}
	}
	return false
}

// IsLocal reports whether the application runs in the local environment.
func (a *Application) IsLocal() bool { return a.Environment() == EnvLocal }

// IsProduction reports whether the application runs in production.
func (a *Application) IsProduction() bool { return a.Environment() == EnvProduction }

// RunningUnitTests reports whether the environment is "testing".
func (a *Application) RunningUnitTests() bool { return a.Environment() == EnvTesting }

// RunningInConsole reports whether the application runs as a console
// process. It is true unless APP_RUNNING_IN_CONSOLE is "false".
func (a *Application) RunningInConsole() bool {
	return os.Getenv("APP_RUNNING_IN_CONSOLE") != "false"
}
