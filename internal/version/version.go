// Package version carries build metadata for the arena binaries.
package version

import "fmt"

// Set with -ldflags "-X github.com/ericogr/tournament-arena/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
)

// Info is the build metadata as served by GET /api/version.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date,omitempty"`
}

// Current returns the metadata of the running binary.
func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String renders the metadata on one line, e.g. "v1.2.0 (abc123, 2026-01-02)".
func String() string {
	if Date == "" {
		return fmt.Sprintf("%s (%s)", Version, Commit)
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
