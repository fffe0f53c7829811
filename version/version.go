// Package version provides build version information for the Anvil
// client, used for the User-Agent header on API requests.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/levrofin/anvil-go/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Get returns the version string, falling back to VCS build info when
// nothing was stamped at build time.
func Get() string {
	if GitCommit != "" {
		return fmt.Sprintf("%s-%s", Version, shorten(GitCommit))
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return fmt.Sprintf("%s-%s", Version, shorten(setting.Value))
			}
		}
	}
	return Version
}

// UserAgent returns the User-Agent string sent on API requests.
func UserAgent() string {
	return "anvil-go/" + Get()
}

func shorten(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
