package config

import (
	"sync"

	"github.com/spf13/viper"
)

// Repository is the application configuration store. Keys are
// case-insensitive and nested sections are addressed with dots.
type Repository struct {
	mu sync.RWMutex
	v  *viper.Viper
}

// NewRepository creates a repository seeded with items.
func NewRepository(items map[string]any) *Repository {
	v := viper.New()
	if len(items) > 0 {
		_ = v.MergeConfigMap(items)
	}
	return &Repository{v: v}
}

// Get returns the value at key, or nil.
func (r *Repository) Get(key string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.Get(key)
}

// GetString returns the value at key as a string.
func (r *Repository) GetString(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.GetString(key)
}

// GetBool returns the value at key as a bool.
func (r *Repository) GetBool(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.GetBool(key)
}

// GetInt returns the value at key as an int.
func (r *Repository) GetInt(key string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.GetInt(key)
}

// GetStringSlice returns the value at key as an ordered []string. Lists
// decoded from files ([]any) are converted element by element.
func (r *Repository) GetStringSlice(key string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.GetStringSlice(key)
}

// GetStringMap returns the section at key.
func (r *Repository) GetStringMap(key string) map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.GetStringMap(key)
}

// Has reports whether key has a value from any source.
func (r *Repository) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.IsSet(key)
}

// Set overrides the value at key.
func (r *Repository) Set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.v.Set(key, value)
}

// SetDefault sets the value used when key has no other source.
func (r *Repository) SetDefault(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.v.SetDefault(key, value)
}

// Merge merges items into the section name.
func (r *Repository) Merge(name string, items map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.v.MergeConfigMap(map[string]any{name: items})
}

// Unmarshal decodes the section at key into out using mapstructure tags.
func (r *Repository) Unmarshal(key string, out any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.UnmarshalKey(key, out)
}

// All returns every setting as a nested map.
func (r *Repository) All() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.v.AllSettings()
}
