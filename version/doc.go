// Package version reports the framework build that an Application runs on.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/laracore/version.Version=1.2.0"
//
// When they are not set, the module's VCS build settings are used.
package version
