package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Framework is the name reported alongside the version.
const Framework = "laracore"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Framework string    `json:"framework"`
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// GetVersionInfo returns the version information of the running binary.
func GetVersionInfo() *Info {
	info := &Info{
		Framework: Framework,
		Version:   Version,
		GitCommit: GitCommit,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
						info.BuildDate = t
					}
				}
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}

	return info
}

// String returns the short version: version, commit and dirty marker.
func (i *Info) String() string {
	if i.GitCommit == "" {
		return i.Version
	}
	if i.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", i.Version, i.GitCommit)
	}
	return fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
}

// Fields returns the info as structured log fields.
func (i *Info) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"framework": i.Framework,
		"version":   i.String(),
	}
	if i.GoVersion != "" {
		fields["go_version"] = i.GoVersion
	}
	if !i.BuildDate.IsZero() {
		fields["build_date"] = i.BuildDate.Format(time.RFC3339)
	}
	return fields
}

// GetShortVersion returns a short version string.
func GetShortVersion() string {
	return GetVersionInfo().String()
}
