package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	-X helixview/internal/buildinfo.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the overlay and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" && c != "unknown" {
		if len(c) > 7 {
			c = c[:7]
		}
		return c
	}
	return "dev"
}

// String returns the full version line.
func String() string {
	return fmt.Sprintf("helix %s (commit %s, built %s)", Version, commit(), Date)
}

// commit prefers the ldflags value and falls back to the VCS stamp the Go
// toolchain embeds.
func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return Commit
}
