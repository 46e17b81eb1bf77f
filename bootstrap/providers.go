package bootstrap

import (
	"github.com/kbukum/laracore/config"
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/logger"
	"github.com/kbukum/laracore/provider"
)

// Register registers a provider; see provider.Registry.Register.
func (a *Application) Register(p provider.Provider, force bool) (provider.Provider, error) {
	return a.registry.Register(p, force)
}

// RegisterClass registers the provider catalogued under name.
func (a *Application) RegisterClass(name string, force bool) (provider.Provider, error) {
	return a.registry.RegisterClass(name, force)
}

// RegisterConfiguredProviders registers every provider named in
// app.providers, in listed order. It stops at the first failure.
func (a *Application) RegisterConfiguredProviders() error {
	repo, err := container.Resolve[*config.Repository](a.Container, container.KeyConfig)
	if err != nil {
		return err
	}
	names := repo.GetStringSlice("app.providers")
	for _, name := range names {
		if _, err := a.RegisterClass(name, false); err != nil {
			return err
		}
	}
	a.log.Debug("configured providers registered", logger.Fields("count", len(names)))
	return nil
}

// GetProvider returns the first registered provider matching
// classOrInstance, or nil.
func (a *Application) GetProvider(classOrInstance any) provider.Provider {
	return a.registry.GetProvider(classOrInstance)
}

// GetProviders returns every registered provider matching classOrInstance.
func (a *Application) GetProviders(classOrInstance any) []provider.Provider {
	return a.registry.GetProviders(classOrInstance)
}

// GetLoadedProviders returns the set of registered provider classes.
func (a *Application) GetLoadedProviders() map[string]bool {
	return a.registry.LoadedProviders()
}

// Providers returns the registered providers in registration order.
func (a *Application) Providers() []provider.Provider {
	return a.registry.Providers()
}

// AfterBoot registers fn to run after each provider boots.
func (a *Application) AfterBoot(fn func(provider.Provider)) {
	a.registry.AfterBoot(fn)
}

// Boot boots the registered providers once. Booting callbacks run before
// the first attempt, booted callbacks after success. A failed boot can be
// retried; providers that already booted are not booted again.
func (a *Application) Boot() error {
	if a.IsBooted() {
		return nil
	}
	if !a.bootingFired {
		a.bootingFired = true
		fireAppCallbacks(a, a.bootingCallbacks)
	}
	if err := a.registry.BootAll(); err != nil {
		return err
	}
	fireAppCallbacks(a, a.bootedCallbacks)
	return nil
}

// IsBooted reports whether the providers have booted.
func (a *Application) IsBooted() bool {
	return a.registry.IsBooted()
}

// RegisterDeferredProvider is a no-op: deferred providers are registered
// eagerly like any other.
func (a *Application) RegisterDeferredProvider(name, service string) {}

// IsDownForMaintenance always reports false; maintenance mode is not supported.
func (a *Application) IsDownForMaintenance() bool { return false }

// GetCachedServicesPath returns where a services cache would live. Nothing
// is written there.
func (a *Application) GetCachedServicesPath() string {
	return a.BasePath("bootstrap/cache/services.json")
}

// GetCachedPackagesPath returns where a packages cache would live. Nothing
// is written there.
func (a *Application) GetCachedPackagesPath() string {
	return a.BasePath("bootstrap/cache/packages.json")
}
