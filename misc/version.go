// Package misc provides program identity helpers.
package misc

import "runtime/debug"

// set by the linker during release build
var (
	appName = "csb"
	version = "development"
	gitHash = ""
)

// GetAppName returns program name to be used in log and report names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
