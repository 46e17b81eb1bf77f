// Package bootstrap provides the Application: a container that knows its
// base path, loads configuration, and drives service providers through
// registration and boot.
//
// # Quick Start
//
//	app, err := bootstrap.New("/srv/shop")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Terminate(ctx)
//
//	cfg := container.MustResolve[*config.Repository](app.Container, "config")
//
// New runs the bootstrap pipeline once: LoadConfiguration reads the
// environment file and the config directory, RegisterProviders registers the
// providers listed under "app.providers", and BootProviders boots them. Each
// step is bound in the container and can be replaced before the pipeline
// runs:
//
//	app, _ := bootstrap.New(base, bootstrap.WithoutBootstrap())
//	app.Bind(bootstrap.KeyLoadConfiguration, func(*container.Container) any {
//	    return myLoader{}
//	})
//	err := app.Bootstrap(ctx)
package bootstrap
