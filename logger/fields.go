package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldTraceID    = "trace_id"
	FieldSpanID     = "span_id"
	FieldAbstract   = "abstract"
	FieldAlias      = "alias"
	FieldShared     = "shared"
	FieldProvider   = "provider"
	FieldForce      = "force"
	FieldStep       = "step"
	FieldPhase      = "phase"
	FieldEnv        = "env"
	FieldBasePath   = "base_path"
	FieldInstanceID = "instance_id"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("op", "save", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a step that failed.
func ErrorFields(step string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldStep:  step,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed step.
func DurationFields(step string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldStep:     step,
		FieldDuration: d.Milliseconds(),
	}
}
