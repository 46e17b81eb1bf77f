package providers

import (
	"github.com/kbukum/laracore/config"
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/provider"
)

// Catalog names of the default providers.
const (
	NameEvents        = "events"
	NameFiles         = "files"
	NameLog           = "log"
	NameEncryption    = "encryption"
	NameObservability = "observability"
)

func init() {
	provider.RegisterClass(NameEvents, func(*container.Container) (provider.Provider, error) {
		return &EventServiceProvider{}, nil
	})
	provider.RegisterClass(NameFiles, func(*container.Container) (provider.Provider, error) {
		return &FilesystemServiceProvider{}, nil
	})
	provider.RegisterClass(NameLog, func(*container.Container) (provider.Provider, error) {
		return &LogServiceProvider{}, nil
	})
	provider.RegisterClass(NameEncryption, func(*container.Container) (provider.Provider, error) {
		return &EncryptionServiceProvider{}, nil
	})
	provider.RegisterClass(NameObservability, func(*container.Container) (provider.Provider, error) {
		return &ObservabilityServiceProvider{}, nil
	})
}

// repository returns the bound configuration, or an empty one.
func repository(c *container.Container) *config.Repository {
	if repo, ok := container.TryResolve[*config.Repository](c, container.KeyConfig); ok {
		return repo
	}
	return config.NewRepository(nil)
}
