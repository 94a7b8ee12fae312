// Package version reports the agenda build: release, commit and build time.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Name is the product name printed next to the version.
const Name = "Agenda ADSO"

// Build metadata. Each value can be overridden with -ldflags "-X".
var (
	Version    = "dev"
	CommitHash = ""
	BuildTime  = ""
)

var readVCS sync.Once

// GetInfo returns the version followed by the short commit hash when known.
// Missing commit data is filled in from the module's VCS build settings.
func GetInfo() string {
	readVCS.Do(fillFromBuildInfo)

	res := Version
	if CommitHash != "" {
		res += fmt.Sprintf(" (%s)", shortHash(CommitHash))
	}
	return res
}

// String returns the product name and GetInfo.
func String() string {
	return Name + " " + GetInfo()
}

func fillFromBuildInfo() {
	if CommitHash != "" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			CommitHash = setting.Value
		case "vcs.time":
			if BuildTime == "" {
				BuildTime = setting.Value
			}
		}
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
