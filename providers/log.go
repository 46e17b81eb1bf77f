package providers

import (
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/logger"
	"github.com/kbukum/laracore/provider"
)

// loggerOwner is implemented by the application, which hands the logger on
// to its registry and its own log.
type loggerOwner interface {
	SetLogger(l *logger.Logger)
}

// LogServiceProvider binds the application logger, configured from the
// "logging" section, as "log".
type LogServiceProvider struct{ provider.Base }

// Register binds the logger. The section is read when the logger is first
// resolved.
func (p *LogServiceProvider) Register(c *container.Container) error {
	c.SingletonIf(container.KeyLog, func(c *container.Container) (any, error) {
		repo := repository(c)

		var cfg logger.Config
		if err := repo.Unmarshal("logging", &cfg); err != nil {
			return nil, errors.InvalidConfig("logging", "cannot decode section").WithCause(err)
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, errors.InvalidConfig("logging", err.Error())
		}

		name := repo.GetString("app.name")
		if name == "" {
			name = "laracore"
		}
		return logger.New(&cfg, name), nil
	})
	return nil
}

// Boot makes the configured logger the container's and the process default.
func (p *LogServiceProvider) Boot(c *container.Container) error {
	l, err := container.Resolve[*logger.Logger](c, container.KeyLog)
	if err != nil {
		return err
	}
	if app, ok := container.TryResolve[loggerOwner](c, container.KeyApp); ok {
		app.SetLogger(l)
	} else {
		c.SetLogger(l)
	}
	logger.SetGlobalLogger(l)
	return nil
}
