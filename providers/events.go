package providers

import (
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/events"
	"github.com/kbukum/laracore/provider"
)

// EventServiceProvider binds the shared event dispatcher as "events".
type EventServiceProvider struct{ provider.Base }

// Register binds the dispatcher unless one is already bound.
func (p *EventServiceProvider) Register(c *container.Container) error {
	c.SingletonIf(container.KeyEvents, func(*container.Container) any {
		return events.NewDispatcher()
	})
	return nil
}
