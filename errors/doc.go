// Package errors provides the structured error type used across laracore.
// Every failure raised by the container, the provider registry and the
// bootstrap pipeline is an *AppError carrying a machine-readable code, so
// callers can branch on the code instead of matching message text.
package errors
