package provider

import (
	"reflect"

	"github.com/kbukum/laracore/container"
)

// Provider registers services into a container.
type Provider interface {
	Register(c *container.Container) error
}

// Constructor creates a provider for the owning container.
type Constructor func(c *container.Container) (Provider, error)

// ClassOf returns the class identity of a provider: its Go type, e.g.
// "*providers.EventServiceProvider". A string is returned unchanged.
func ClassOf(p any) string {
	if s, ok := p.(string); ok {
		return s
	}
	return container.TypeKey(p)
}

// Base is an embeddable no-op provider.
//
//	type AppServiceProvider struct{ provider.Base }
//
//	func (p *AppServiceProvider) Register(c *container.Container) error { ... }
type Base struct{}

// Register does nothing.
func (Base) Register(*container.Container) error { return nil }

// Boot does nothing.
func (Base) Boot(*container.Container) error { return nil }

// Bindings returns no bindings.
func (Base) Bindings() map[string]any { return nil }

// Singletons returns no singletons.
func (Base) Singletons() map[string]any { return nil }

// sameInstance reports whether a and b are the same provider value.
func sameInstance(a, b Provider) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return va.Comparable() && va.Equal(vb)
}
