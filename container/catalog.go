package container

import (
	"sort"
	"sync"

	"github.com/kbukum/laracore/errors"
)

var (
	classMu sync.RWMutex
	classes = make(map[string]Factory)
)

// RegisterClass adds a named constructor to the process-wide class catalog.
// constructor accepts the same forms as Bind. Make falls back to the catalog
// when a canonical name has no binding.
func RegisterClass(name string, constructor any) {
	if constructor == nil {
		panic("container: class [" + name + "] registered with a nil constructor")
	}
	f := normalize(name, constructor)
	classMu.Lock()
	defer classMu.Unlock()
	classes[name] = f
}

// ClassRegistered reports whether name is in the class catalog.
func ClassRegistered(name string) bool {
	classMu.RLock()
	defer classMu.RUnlock()
	_, ok := classes[name]
	return ok
}

// Classes returns the sorted names in the class catalog.
func Classes() []string {
	classMu.RLock()
	defer classMu.RUnlock()
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildClass(c *Container, name string, params Params) (any, error) {
	classMu.RLock()
	f, ok := classes[name]
	classMu.RUnlock()
	if !ok {
		return nil, errors.UnresolvableBinding(name, "no binding or class is registered")
	}
	return f(c, params)
}

var (
	instanceMu sync.Mutex
	instance   *Container
)

// SetInstance sets the process default container.
func SetInstance(c *Container) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = c
}

// GetInstance returns the process default container, creating one if none
// has been set.
func GetInstance() *Container {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = New()
	}
	return instance
}
