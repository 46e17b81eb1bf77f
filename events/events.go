// Package events provides the synchronous event dispatcher bound as "events".
//
// Listeners are registered per event name. A name containing a glob pattern
// ("bootstrapped: *") listens to every matching event; patterns follow
// path.Match syntax.
package events

import (
	"path"
	"strings"
	"sync"

	"github.com/kbukum/laracore/logger"
)

// Listener handles one dispatched event. Returning an error stops the dispatch.
type Listener func(event string, payload any) error

// Dispatcher delivers events to listeners in registration order.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
	wildcards map[string][]Listener
	order     []string
	log       *logger.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]Listener),
		wildcards: make(map[string][]Listener),
		log:       logger.WithComponent("events"),
	}
}

// Listen registers listener for each of the given event names or patterns.
func (d *Dispatcher) Listen(listener Listener, events ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, event := range events {
		if isPattern(event) {
			if _, ok := d.wildcards[event]; !ok {
				d.order = append(d.order, event)
			}
			d.wildcards[event] = append(d.wildcards[event], listener)
			continue
		}
		d.listeners[event] = append(d.listeners[event], listener)
	}
}

// HasListeners reports whether dispatching event would reach any listener.
func (d *Dispatcher) HasListeners(event string) bool {
	return len(d.listenersFor(event)) > 0
}

// Dispatch calls every listener for event synchronously: exact listeners
// first, then wildcard listeners in the order their patterns were first
// registered. The first listener error is returned and stops the dispatch.
func (d *Dispatcher) Dispatch(event string, payload any) error {
	listeners := d.listenersFor(event)
	d.log.Debug("event dispatched", logger.Fields("event", event, "listeners", len(listeners)))
	for _, l := range listeners {
		if err := l(event, payload); err != nil {
			return err
		}
	}
	return nil
}

// Forget removes every listener registered under event or pattern.
func (d *Dispatcher) Forget(event string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, event)
	if _, ok := d.wildcards[event]; ok {
		delete(d.wildcards, event)
		for i, p := range d.order {
			if p == event {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// Flush removes all listeners.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = make(map[string][]Listener)
	d.wildcards = make(map[string][]Listener)
	d.order = nil
}

func (d *Dispatcher) listenersFor(event string) []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := append([]Listener(nil), d.listeners[event]...)
	for _, pattern := range d.order {
		if ok, _ := path.Match(pattern, event); ok {
			out = append(out, d.wildcards[pattern]...)
		}
	}
	return out
}

func isPattern(event string) bool {
	return strings.ContainsAny(event, "*?[")
}
