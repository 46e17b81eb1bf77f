// Package container provides the inversion-of-control container at the core
// of laracore.
//
// A Container maps abstract names to factories. Names can be aliased, so the
// same service is reachable by a short key ("config") and by its Go type
// ("*config.Repository"). Shared bindings are built once and cached; transient
// bindings are built on every Make.
//
// # Binding
//
//	c := container.New()
//	c.Singleton("cache", func(c *container.Container) any { return newCache() })
//	c.Bind("mailer", NewMailer) // parameters injected by type
//	c.Alias("cache", container.KeyOf[*Cache]())
//
// # Resolution
//
//	cache := container.MustResolve[*Cache](c, "cache")
//
// When no binding exists, Make falls back to the class catalog populated with
// RegisterClass, which plays the role of instantiating a class by name.
package container
