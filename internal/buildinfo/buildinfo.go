// Package buildinfo carries version stamps set with -ldflags, e.g.
//
//	-ldflags "-X qoiview/internal/buildinfo.Version=v0.3.0"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for window titles.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the full stamp printed by --version.
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
