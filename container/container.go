package container

import (
	stderrors "errors"
	"io"
	"sort"
	"sync"

	"github.com/kbukum/laracore/logger"
)

// Params are explicit constructor arguments, keyed by type key (see TypeKey).
type Params map[string]any

// Factory builds a concrete value for an abstract.
type Factory func(c *Container, params Params) (any, error)

// ResolvingCallback is invoked after an abstract has been built.
type ResolvingCallback func(abstract string, instance any)

type binding struct {
	factory Factory
	shared  bool
}

// Container holds bindings, shared instances and aliases.
//
// The maps are guarded by a RWMutex and factories run without the lock held,
// so a factory may resolve its own dependencies. A factory receives a scoped
// view of the container: it shares every binding and instance, and carries
// the chain of abstracts being built so circular dependencies are reported
// instead of recursing.
type Container struct {
	*state
	stack []string
}

type state struct {
	mu              sync.RWMutex
	bindings        map[string]*binding
	instances       map[string]any
	aliases         map[string]string
	abstractAliases map[string][]string
	resolved        map[string]bool
	afterResolving  []ResolvingCallback
	log             *logger.Logger

	// builds in progress across every view, for factories that resolve
	// through a captured container instead of the scoped one.
	inflight map[string]int
	chain    []string
}

// New creates an empty container.
func New() *Container {
	return &Container{state: &state{
		bindings:        make(map[string]*binding),
		instances:       make(map[string]any),
		aliases:         make(map[string]string),
		abstractAliases: make(map[string][]string),
		resolved:        make(map[string]bool),
		inflight:        make(map[string]int),
		log:             logger.WithComponent("container"),
	}}
}

// Same reports whether c and other are views of the same container.
func (c *Container) Same(other *Container) bool {
	return other != nil && c.state == other.state
}

// SetLogger replaces the container's logger.
func (c *Container) SetLogger(l *logger.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l.WithComponent("container")
}

// Bind registers a transient binding. concrete may be a Factory, a
// func(*Container) any, a func(*Container) (any, error), any other function
// whose parameters are injected by type, a string naming another abstract or
// catalog class, or nil to bind abstract to its own catalog class.
// Rebinding drops any instance cached for abstract.
func (c *Container) Bind(abstract string, concrete any) {
	c.bind(abstract, concrete, false)
}

// Singleton registers a shared binding, built once and cached.
func (c *Container) Singleton(abstract string, concrete any) {
	c.bind(abstract, concrete, true)
}

// BindIf registers a transient binding only if abstract is not bound yet.
func (c *Container) BindIf(abstract string, concrete any) {
	if !c.Bound(abstract) {
		c.Bind(abstract, concrete)
	}
}

// SingletonIf registers a shared binding only if abstract is not bound yet.
func (c *Container) SingletonIf(abstract string, concrete any) {
	if !c.Bound(abstract) {
		c.Singleton(abstract, concrete)
	}
}

func (c *Container) bind(abstract string, concrete any, shared bool) {
	factory := normalize(abstract, concrete)

	c.mu.Lock()
	delete(c.instances, abstract)
	delete(c.aliases, abstract)
	c.bindings[abstract] = &binding{factory: factory, shared: shared}
	log := c.log
	c.mu.Unlock()

	log.Debug("binding registered", logger.Fields(logger.FieldAbstract, abstract, logger.FieldShared, shared))
}

// Instance registers an existing value as a shared instance and returns it.
// If abstract was an alias it stops being one.
func (c *Container) Instance(abstract string, value any) any {
	c.mu.Lock()
	delete(c.aliases, abstract)
	delete(c.bindings, abstract)
	c.instances[abstract] = value
	log := c.log
	c.mu.Unlock()

	log.Debug("instance registered", logger.Fields(logger.FieldAbstract, abstract))
	return value
}

// Alias makes alias resolve to abstract. Aliasing a name to itself panics.
func (c *Container) Alias(abstract, alias string) {
	if abstract == alias {
		panic("container: [" + abstract + "] is aliased to itself")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.aliases[alias] = abstract
	for _, existing := range c.abstractAliases[abstract] {
		if existing == alias {
			return
		}
	}
	c.abstractAliases[abstract] = append(c.abstractAliases[abstract], alias)
}

// GetAlias returns the canonical name for name, following alias chains.
func (c *Container) GetAlias(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canonical(name)
}

// canonical must be called with c.mu held.
func (c *Container) canonical(name string) string {
	seen := map[string]bool{name: true}
	for {
		target, ok := c.aliases[name]
		if !ok || seen[target] {
			return name
		}
		seen[target] = true
		name = target
	}
}

// IsAlias reports whether name is registered as an alias.
func (c *Container) IsAlias(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.aliases[name]
	return ok
}

// AliasesOf returns the aliases registered directly for abstract, in
// registration order.
func (c *Container) AliasesOf(abstract string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.abstractAliases[abstract]...)
}

// Bound reports whether name has a binding, an instance, or is an alias.
func (c *Container) Bound(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, b := c.bindings[name]
	_, i := c.instances[name]
	_, a := c.aliases[name]
	return b || i || a
}

// Has reports whether Make can be attempted for name: it is bound, or its
// canonical name is a registered class.
func (c *Container) Has(name string) bool {
	return c.Bound(name) || ClassRegistered(c.GetAlias(name))
}

// Resolved reports whether name has been built or holds an instance.
func (c *Container) Resolved(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name = c.canonical(name)
	_, inst := c.instances[name]
	return c.resolved[name] || inst
}

// IsShared reports whether name resolves to a shared binding or an instance.
func (c *Container) IsShared(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name = c.canonical(name)
	if _, ok := c.instances[name]; ok {
		return true
	}
	b, ok := c.bindings[name]
	return ok && b.shared
}

// AfterResolving registers a callback fired after every successful build.
// Cached instances returned without building do not fire it.
func (c *Container) AfterResolving(fn ResolvingCallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, fn)
}

// Forget removes the binding and cached instance for abstract.
func (c *Container) Forget(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	abstract = c.canonical(abstract)
	delete(c.bindings, abstract)
	delete(c.instances, abstract)
	delete(c.resolved, abstract)
}

// ForgetInstances drops every cached instance; bindings are kept.
func (c *Container) ForgetInstances() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[string]any)
}

// Flush removes all bindings, instances, aliases and callbacks.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.instances = make(map[string]any)
	c.aliases = make(map[string]string)
	c.abstractAliases = make(map[string][]string)
	c.resolved = make(map[string]bool)
	c.afterResolving = nil
}

// Keys returns the sorted names that have a binding or an instance.
func (c *Container) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		seen[k] = true
	}
	for k := range c.instances {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close closes every cached instance implementing io.Closer, in key order,
// skipping the container itself and any value embedding it. All close errors are joined.
func (c *Container) Close() error {
	c.mu.RLock()
	closers := make(map[string]io.Closer)
	for k, inst := range c.instances {
		if view, ok := inst.(interface{ Same(*Container) bool }); ok && view.Same(c) {
			continue
		}
		if cl, ok := inst.(io.Closer); ok {
			closers[k] = cl
		}
	}
	c.mu.RUnlock()

	keys := make([]string, 0, len(closers))
	for k := range closers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if err := closers[k].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
