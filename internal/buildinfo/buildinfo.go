// Package buildinfo carries the release identifiers stamped in with
// -ldflags "-X orrery/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available, for titles and logs.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	default:
		return "dev"
	}
}

// String is the full one-line description printed by `orrery version`.
func String() string {
	return fmt.Sprintf("orrery %s (commit %s, built %s)", Version, Commit, Date)
}
