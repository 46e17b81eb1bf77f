package container

import (
	"fmt"
	"reflect"

	"github.com/kbukum/laracore/errors"
)

// TypeKey returns the key for the dynamic type of v, e.g. "*config.Repository".
func TypeKey(v any) string {
	if v == nil {
		return ""
	}
	return reflect.TypeOf(v).String()
}

// KeyOf returns the key for T. Unlike TypeKey it works for interface types:
// KeyOf[afero.Fs]() is "afero.Fs".
func KeyOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// MustResolve resolves abstract as T, panics on error.
//
// Example:
//
//	cfg := container.MustResolve[*config.Repository](app.Container, "config")
func MustResolve[T any](c *Container, abstract string) T {
	result, err := Resolve[T](c, abstract)
	if err != nil {
		panic(fmt.Sprintf("container: failed to resolve %s: %v", abstract, err))
	}
	return result
}

// Resolve resolves abstract as T. Errors from Make are returned unchanged; a
// value of the wrong type is an UNRESOLVABLE_BINDING error.
func Resolve[T any](c *Container, abstract string) (T, error) {
	var zero T
	instance, err := c.Make(abstract)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		expected := KeyOf[T]()
		return zero, errors.UnresolvableBinding(abstract, fmt.Sprintf("resolved %T, expected %s", instance, expected)).
			WithDetails(map[string]any{"expected": expected, "actual": TypeKey(instance)})
	}
	return result, nil
}

// TryResolve resolves abstract as T, returns the zero value and false on any failure.
// Use this when a dependency is optional.
//
// Example:
//
//	if events, ok := container.TryResolve[*events.Dispatcher](c, "events"); ok {
//	    _ = events.Dispatch("cache.cleared", nil)
//	}
func TryResolve[T any](c *Container, abstract string) (T, bool) {
	result, err := Resolve[T](c, abstract)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}
