package provider

import "github.com/kbukum/laracore/container"

// Bootable is optionally implemented by providers that need to run once all
// providers are registered.
type Bootable interface {
	Boot(c *container.Container) error
}

// BindingsProvider is optionally implemented by providers that declare
// transient bindings. Each value accepts the same forms as Container.Bind.
type BindingsProvider interface {
	Bindings() map[string]any
}

// SingletonsProvider is optionally implemented by providers that declare
// shared bindings.
type SingletonsProvider interface {
	Singletons() map[string]any
}

// DeferrableProvider is optionally implemented by providers whose services
// are registered lazily. It lists the abstracts the provider binds.
type DeferrableProvider interface {
	Provides() []string
}
