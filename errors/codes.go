package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Container errors
const (
	// ErrCodeUnresolvableBinding indicates an abstract could not be built:
	// no binding, no class, a missing dependency or a circular dependency.
	ErrCodeUnresolvableBinding ErrorCode = "UNRESOLVABLE_BINDING"
	// ErrCodeProviderNotFound indicates a provider class name is not in the catalog.
	ErrCodeProviderNotFound ErrorCode = "PROVIDER_NOT_FOUND"
)

// Application errors
const (
	// ErrCodeNamespaceDetection indicates the application namespace could not be determined.
	ErrCodeNamespaceDetection ErrorCode = "NAMESPACE_DETECTION"
	// ErrCodeInvalidConfig indicates a configuration value is missing or malformed.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeValidation indicates a struct failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
