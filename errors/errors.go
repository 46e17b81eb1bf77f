package errors

import (
	"fmt"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// UnresolvableBinding creates a new AppError for an abstract the container cannot build.
func UnresolvableBinding(abstract, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeUnresolvableBinding,
		Message: fmt.Sprintf("Target [%s] is not instantiable: %s", abstract, reason),
		Details: map[string]any{"abstract": abstract},
	}
}

// CircularDependency creates a new AppError for an abstract that is already
// being built further up the resolution stack.
func CircularDependency(abstract string, stack []string) *AppError {
	cycle := append(append([]string{}, stack...), abstract)
	return &AppError{
		Code:    ErrCodeUnresolvableBinding,
		Message: fmt.Sprintf("Circular dependency detected while resolving [%s]", abstract),
		Details: map[string]any{"abstract": abstract, "cycle": strings.Join(cycle, " -> ")},
	}
}

// ProviderNotFound creates a new AppError for an unknown provider class name.
func ProviderNotFound(name string) *AppError {
	return &AppError{
		Code:    ErrCodeProviderNotFound,
		Message: fmt.Sprintf("Provider class [%s] is not registered.", name),
		Details: map[string]any{"provider": name},
	}
}

// NamespaceDetection creates a new AppError for an application namespace that
// could not be derived from the package manifest.
func NamespaceDetection(appPath string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeNamespaceDetection,
		Message: "Unable to detect application namespace.",
		Details: map[string]any{"path": appPath},
		Cause:   cause,
	}
}

// InvalidConfig creates a new AppError for a bad configuration value.
func InvalidConfig(key, reason string) *AppError {
	details := make(map[string]any)
	if key != "" {
		details["key"] = key
	}
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: fmt.Sprintf("Invalid configuration: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred.",
		Cause:   cause,
	}
}
