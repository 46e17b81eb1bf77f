// Package validation checks configuration values before the application
// boots.
//
// Struct tag validation (go-playground/validator) is used for typed config
// sections such as config.AppSettings. The chained Validator collects errors
// for values that are checked one by one, like the provider list.
//
//	v := validation.New()
//	v.Required("app.providers[0]", name)
//	if err := v.Validate(); err != nil { ... }
package validation
