package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
)

// Hook is a lifecycle callback that runs during application termination.
type Hook func(ctx context.Context) error

// Booting registers a callback that runs before the providers are first booted.
func (a *Application) Booting(fn func(*Application)) {
	a.bootingCallbacks = append(a.bootingCallbacks, fn)
}

// Booted registers a callback that runs after the providers have booted.
// If the application has already booted, fn runs immediately.
func (a *Application) Booted(fn func(*Application)) {
	a.bootedCallbacks = append(a.bootedCallbacks, fn)
	if a.IsBooted() {
		fn(a)
	}
}

// Terminating registers a hook that runs when the application terminates.
func (a *Application) Terminating(hooks ...Hook) {
	a.terminatingCallbacks = append(a.terminatingCallbacks, hooks...)
}

// Terminate runs the terminating hooks in registration order, then closes
// every cached instance that holds resources, including the telemetry
// exporters. Every hook runs even if an earlier one fails; the errors are
// joined. Terminate runs once.
func (a *Application) Terminate(ctx context.Context) error {
	if a.terminated {
		return nil
	}
	a.terminated = true

	var errs []error
	if err := runHooks(ctx, a.terminatingCallbacks); err != nil {
		a.log.WithError(err).Error("terminating hook error")
		errs = append(errs, err)
	}
	if err := a.Container.Close(); err != nil {
		a.log.WithError(err).Error("container close error")
		errs = append(errs, err)
	}

	a.log.Info("application terminated")
	return stderrors.Join(errs...)
}

// runHooks executes hooks sequentially and joins their errors.
func runHooks(ctx context.Context, hooks []Hook) error {
	var errs []error
	for i, h := range hooks {
		if err := h(ctx); err != nil {
			errs = append(errs, fmt.Errorf("hook %d failed: %w", i, err))
		}
	}
	return stderrors.Join(errs...)
}

func fireAppCallbacks(a *Application, callbacks []func(*Application)) {
	for _, fn := range callbacks {
		fn(a)
	}
}
