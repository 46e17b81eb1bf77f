// Package providers holds the framework's default service providers.
//
// Each provider is registered in the provider class catalog under a short
// name so it can be listed in the "app.providers" configuration:
//
//	app:
//	  providers: [files, log, encryption, observability]
//
// The events provider is registered by the application itself before the
// bootstrap pipeline runs.
package providers
