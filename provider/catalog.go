package provider

import (
	"sort"
	"sync"
)

var catalog = struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}{constructors: make(map[string]Constructor)}

// RegisterClass adds a named provider constructor to the process-wide catalog.
// Registering the same name again replaces the constructor.
func RegisterClass(name string, ctor Constructor) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.constructors[name] = ctor
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, bool) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	ctor, ok := catalog.constructors[name]
	return ctor, ok
}

// Classes returns sorted names of all catalog entries.
func Classes() []string {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	names := make([]string, 0, len(catalog.constructors))
	for name := range catalog.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
