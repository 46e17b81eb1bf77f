package provider

import (
	"slices"
	"sort"
	"sync"

	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/logger"
)

// Registry tracks the providers registered into one container.
//
// Registration and boot are expected from a single goroutine; the mutex only
// protects the snapshots returned to other readers. Provider methods are
// called without the lock held, so a provider may register further providers.
type Registry struct {
	mu        sync.RWMutex
	c         *container.Container
	providers []Provider
	bootedAt  []bool
	loaded    map[string]bool
	names     map[string]string
	booted    bool
	afterBoot []func(Provider)
	log       *logger.Logger
}

// NewRegistry creates an empty registry for c.
func NewRegistry(c *container.Container) *Registry {
	return &Registry{
		c:      c,
		loaded: make(map[string]bool),
		names:  make(map[string]string),
		log:    logger.WithComponent("provider"),
	}
}

// SetLogger replaces the registry's logger.
func (r *Registry) SetLogger(l *logger.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = l.WithComponent("provider")
}

// AfterBoot registers fn to run after each provider boots successfully.
func (r *Registry) AfterBoot(fn func(Provider)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterBoot = append(r.afterBoot, fn)
}

// Register registers p. If a provider of the same class is already
// registered and force is false, the existing provider is returned and p is
// ignored. Otherwise p.Register runs, its Bindings and Singletons are copied
// into the container, and p is recorded. When the registry has already
// booted, p is booted immediately.
func (r *Registry) Register(p Provider, force bool) (Provider, error) {
	if p == nil {
		return nil, errors.New(errors.ErrCodeInternal, "cannot register a nil provider")
	}
	class := ClassOf(p)
	if !force {
		if existing := r.GetProvider(class); existing != nil {
			return existing, nil
		}
	}

	if err := p.Register(r.c); err != nil {
		return nil, err
	}
	if bp, ok := p.(BindingsProvider); ok {
		bindAll(bp.Bindings(), r.c.Bind)
	}
	if sp, ok := p.(SingletonsProvider); ok {
		bindAll(sp.Singletons(), r.c.Singleton)
	}

	r.mu.Lock()
	r.providers = append(r.providers, p)
	r.bootedAt = append(r.bootedAt, false)
	r.loaded[class] = true
	index := len(r.providers) - 1
	booted := r.booted
	log := r.log
	r.mu.Unlock()

	log.Debug("provider registered", logger.Fields(logger.FieldProvider, class, logger.FieldForce, force))

	if booted {
		if err := r.bootAt(index); err != nil {
			return p, err
		}
	}
	return p, nil
}

// RegisterClass registers the provider named name in the class catalog. An
// unknown name fails with PROVIDER_NOT_FOUND before anything is registered.
func (r *Registry) RegisterClass(name string, force bool) (Provider, error) {
	if !force {
		if existing := r.GetProvider(name); existing != nil {
			return existing, nil
		}
	}

	ctor, ok := Lookup(name)
	if !ok {
		return nil, errors.ProviderNotFound(name)
	}
	p, err := ctor(r.c)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.names[name] = ClassOf(p)
	r.mu.Unlock()

	return r.Register(p, force)
}

// GetProvider returns the first registered provider matching classOrInstance,
// or nil.
func (r *Registry) GetProvider(classOrInstance any) Provider {
	if found := r.GetProviders(classOrInstance); len(found) > 0 {
		return found[0]
	}
	return nil
}

// GetProviders returns every registered provider matching classOrInstance,
// which may be a provider, a class identity or a catalog name.
func (r *Registry) GetProviders(classOrInstance any) []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	class := ClassOf(classOrInstance)
	if mapped, ok := r.names[class]; ok {
		class = mapped
	}

	var found []Provider
	for _, p := range r.providers {
		if ClassOf(p) == class {
			found = append(found, p)
		}
	}
	return found
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Provider(nil), r.providers...)
}

// LoadedProviders returns the set of registered provider classes.
func (r *Registry) LoadedProviders() map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loaded := make(map[string]bool, len(r.loaded))
	for k, v := range r.loaded {
		loaded[k] = v
	}
	return loaded
}

// BootAll boots every registered provider in registration order. It runs at
// most once successfully; providers booted by a failed pass are not booted
// again when BootAll is retried.
func (r *Registry) BootAll() error {
	if r.IsBooted() {
		return nil
	}

	for i := 0; ; i++ {
		r.mu.RLock()
		n := len(r.providers)
		r.mu.RUnlock()
		if i >= n {
			break
		}
		if err := r.bootAt(i); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.booted = true
	r.mu.Unlock()
	return nil
}

// IsBooted reports whether BootAll has completed.
func (r *Registry) IsBooted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.booted
}

func (r *Registry) bootAt(index int) error {
	r.mu.Lock()
	p := r.providers[index]
	for i, other := range r.providers {
		if r.bootedAt[i] && sameInstance(p, other) {
			r.bootedAt[index] = true
		}
	}
	if r.bootedAt[index] {
		r.mu.Unlock()
		return nil
	}
	log := r.log
	r.mu.Unlock()

	if b, ok := p.(Bootable); ok {
		if err := b.Boot(r.c); err != nil {
			log.Error("provider boot failed", logger.Fields(logger.FieldProvider, ClassOf(p), logger.FieldError, err.Error()))
			return err
		}
	}

	r.mu.Lock()
	r.bootedAt[index] = true
	hooks := slices.Clone(r.afterBoot)
	r.mu.Unlock()

	log.Debug("provider booted", logger.Fields(logger.FieldProvider, ClassOf(p)))
	for _, fn := range hooks {
		fn(p)
	}
	return nil
}

func bindAll(bindings map[string]any, bind func(string, any)) {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bind(k, bindings[k])
	}
}
