package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/kbukum/laracore/container"
)

// SetBasePath sets the base path, trimming trailing separators, and rebinds
// the path keys.
func (a *Application) SetBasePath(basePath string) *Application {
	a.basePath = strings.TrimRight(basePath, `/\`)
	a.bindPathsInContainer()
	return a
}

// UseAppPath overrides the application source directory.
func (a *Application) UseAppPath(path string) *Application {
	a.appPath = path
	a.bindPathsInContainer()
	return a
}

// UseDatabasePath overrides the database directory.
func (a *Application) UseDatabasePath(path string) *Application {
	a.databasePath = path
	a.bindPathsInContainer()
	return a
}

// UseStoragePath overrides the storage directory.
func (a *Application) UseStoragePath(path string) *Application {
	a.storagePath = path
	a.bindPathsInContainer()
	return a
}

func (a *Application) bindPathsInContainer() {
	a.Instance(container.KeyPath, a.Path())
	a.Instance(container.KeyPathBase, a.BasePath())
	a.Instance(container.KeyPathConfig, a.ConfigPath())
	a.Instance(container.KeyPathDatabase, a.DatabasePath())
	a.Instance(container.KeyPathStorage, a.StoragePath())
}

// BasePath returns the base path, joined with path if given.
func (a *Application) BasePath(path ...string) string {
	return joinPaths(a.basePath, path...)
}

// ConfigPath returns basePath/config, joined with path if given.
func (a *Application) ConfigPath(path ...string) string {
	return joinPaths(a.BasePath("config"), path...)
}

// DatabasePath returns the database directory, joined with path if given.
func (a *Application) DatabasePath(path ...string) string {
	return joinPaths(a.orBase(a.databasePath, "database"), path...)
}

// StoragePath returns the storage directory, joined with path if given.
func (a *Application) StoragePath(path ...string) string {
	return joinPaths(a.orBase(a.storagePath, "storage"), path...)
}

// Path returns the application source directory, joined with path if given.
func (a *Application) Path(path ...string) string {
	return joinPaths(a.orBase(a.appPath, "src"), path...)
}

func (a *Application) orBase(override, sub string) string {
	if override != "" {
		return override
	}
	return a.BasePath(sub)
}

// joinPaths appends each non-empty element to base with a slash.
func joinPaths(base string, elems ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, e := range elems {
		if e == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(e)
	}
	return b.String()
}

// samePath reports whether a and b name the same location once cleaned.
func samePath(a, b string) bool {
	return filepath.Clean(filepath.FromSlash(a)) == filepath.Clean(filepath.FromSlash(b))
}
