// Package provider implements service providers: the units that register
// bindings into a container and boot once every provider is registered.
//
// A provider only has to implement Register. Boot, Bindings, Singletons and
// Provides are opt-in:
//   - Bootable: Boot runs after all providers are registered, so it may
//     resolve bindings registered by other providers.
//   - BindingsProvider / SingletonsProvider: maps copied into the container
//     right after Register.
//   - DeferrableProvider: the abstracts a provider would register lazily.
//
// A Registry keeps providers in registration order and a loaded set keyed by
// class, the provider's Go type. Registering a second provider of the same
// class is a no-op unless forced.
//
// # Class catalog
//
// Providers named in configuration are looked up in a process-wide catalog:
//
//	provider.RegisterClass("cache", func(c *container.Container) (provider.Provider, error) {
//	    return &CacheServiceProvider{}, nil
//	})
//	reg := provider.NewRegistry(c)
//	reg.RegisterClass("cache", false)
//	err := reg.BootAll()
package provider
