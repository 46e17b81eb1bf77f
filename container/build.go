package container

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/logger"
)

var (
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
	contextType   = reflect.TypeOf((*context.Context)(nil)).Elem()
	containerType = reflect.TypeOf((**Container)(nil)).Elem()
)

// maxReentry bounds how many builds of one abstract may be in progress at
// once. Unscoped re-entry carries no build stack, so this is what stops it.
const maxReentry = 1024

// Make resolves abstract, following aliases. Shared bindings are built once
// and cached; instances are returned as-is.
func (c *Container) Make(abstract string) (any, error) {
	return c.resolve(abstract, nil)
}

// MakeWith resolves abstract with explicit constructor parameters. A build
// with parameters is never cached, and it bypasses a cached instance when a
// binding exists to build from.
func (c *Container) MakeWith(abstract string, params Params) (any, error) {
	return c.resolve(abstract, params)
}

func (c *Container) resolve(abstract string, params Params) (any, error) {
	contextual := len(params) > 0

	c.mu.RLock()
	name := c.canonical(abstract)
	inst, hasInst := c.instances[name]
	b, hasBinding := c.bindings[name]
	c.mu.RUnlock()

	if hasInst && (!contextual || !hasBinding) {
		return inst, nil
	}

	for _, building := range c.stack {
		if building == name {
			return nil, errors.CircularDependency(name, c.stack)
		}
	}
	if err := c.enter(name); err != nil {
		return nil, err
	}
	defer c.leave(name)
	scope := &Container{state: c.state, stack: append(c.stack[:len(c.stack):len(c.stack)], name)}

	var (
		obj any
		err error
	)
	if hasBinding {
		obj, err = b.factory(scope, params)
	} else {
		obj, err = buildClass(scope, name, params)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if hasBinding && b.shared && !contextual {
		// Another goroutine may have cached the instance while we built.
		if existing, ok := c.instances[name]; ok {
			obj = existing
		} else {
			c.instances[name] = obj
		}
	}
	c.resolved[name] = true
	callbacks := append([]ResolvingCallback(nil), c.afterResolving...)
	log := c.log
	c.mu.Unlock()

	log.Debug("abstract resolved", logger.Fields(logger.FieldAbstract, name, logger.FieldShared, hasBinding && b.shared))
	for _, fn := range callbacks {
		fn(name, obj)
	}
	return obj, nil
}

func (s *state) enter(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[name] >= maxReentry {
		return errors.CircularDependency(name, s.cycleTo(name))
	}
	s.inflight[name]++
	s.chain = append(s.chain, name)
	return nil
}

func (s *state) leave(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight[name]--
	if s.inflight[name] <= 0 {
		delete(s.inflight, name)
	}
	for i := len(s.chain) - 1; i >= 0; i-- {
		if s.chain[i] == name {
			s.chain = append(s.chain[:i], s.chain[i+1:]...)
			break
		}
	}
}

// cycleTo returns the builds entered since the most recent build of name.
func (s *state) cycleTo(name string) []string {
	for i := len(s.chain) - 1; i >= 0; i-- {
		if s.chain[i] == name {
			return append([]string(nil), s.chain[i:]...)
		}
	}
	return nil
}

// Call invokes fn, injecting each parameter by type. A trailing error result
// is returned as the error; the remaining results are returned in order.
func (c *Container) Call(fn any, params Params) ([]any, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, errors.UnresolvableBinding(TypeKey(fn), "value is not callable")
	}
	return c.invoke(v, params)
}

func (c *Container) invoke(fn reflect.Value, params Params) ([]any, error) {
	fnType := fn.Type()
	n := fnType.NumIn()
	if fnType.IsVariadic() {
		n--
	}

	args := make([]reflect.Value, n)
	for i := 0; i < n; i++ {
		arg, err := c.argument(fnType.In(i), params)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	out := fn.Call(args)
	if len(out) > 0 && fnType.Out(len(out)-1) == errorType {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}

	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

// argument resolves one parameter. Explicit params win, then the
// container itself and a background context, then the container bindings.
func (c *Container) argument(t reflect.Type, params Params) (reflect.Value, error) {
	key := t.String()
	if v, ok := params[key]; ok {
		return valueFor(t, v, key)
	}
	switch t {
	case containerType:
		return reflect.ValueOf(c), nil
	case contextType:
		return reflect.ValueOf(context.Background()), nil
	}

	v, err := c.Make(key)
	if err != nil {
		return reflect.Value{}, err
	}
	return valueFor(t, v, key)
}

func valueFor(t reflect.Type, v any, key string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, errors.UnresolvableBinding(key, fmt.Sprintf("resolved %T is not assignable to %s", v, key)).
			WithDetails(map[string]any{"expected": key, "actual": rv.Type().String()})
	}
	return rv, nil
}

// normalize turns every accepted concrete form into a Factory.
func normalize(abstract string, concrete any) Factory {
	switch fn := concrete.(type) {
	case nil:
		return func(c *Container, params Params) (any, error) {
			return buildClass(c, abstract, params)
		}
	case Factory:
		return fn
	case func(*Container, Params) (any, error):
		return fn
	case func(*Container) any:
		return func(c *Container, _ Params) (any, error) { return fn(c), nil }
	case func(*Container) (any, error):
		return func(c *Container, _ Params) (any, error) { return fn(c) }
	case string:
		if fn == abstract {
			return normalize(abstract, nil)
		}
		return func(c *Container, params Params) (any, error) {
			return c.resolve(fn, params)
		}
	}

	v := reflect.ValueOf(concrete)
	if v.Kind() != reflect.Func {
		return func(*Container, Params) (any, error) {
			return nil, errors.UnresolvableBinding(abstract, fmt.Sprintf("concrete of type %T is not a constructor", concrete))
		}
	}
	if v.Type().NumOut() == 0 {
		return func(*Container, Params) (any, error) {
			return nil, errors.UnresolvableBinding(abstract, "constructor returns nothing")
		}
	}
	return func(c *Container, params Params) (any, error) {
		out, err := c.invoke(v, params)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out[0], nil
	}
}
