// Package observability wires OpenTelemetry tracing and metrics into the
// application lifecycle.
//
// Tracing and metrics are configured from the "observability" config
// section and exported over OTLP/HTTP:
//
//	tel, err := observability.Setup(ctx, cfg)
//	defer tel.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "bootstrap.LoadConfiguration")
//	defer span.End()
//
// Container resolutions are counted with InstrumentContainer, which hooks
// the container's after-resolving callbacks.
package observability
