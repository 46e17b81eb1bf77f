// Package logger provides structured logging for laracore applications
// using zerolog.
//
// The application binds one *Logger under the "log" key. Container, provider
// registry and bootstrap pipeline each log through a component-scoped child
// of it, so every line carries a "component" field.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.GetGlobalLogger().WithComponent("container")
//	log.Debug("binding registered", logger.Fields(logger.FieldAbstract, "cache"))
package logger
