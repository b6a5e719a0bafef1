// Package buildinfo holds build-time metadata injected via ldflags and
// formats it into the single version string loctok prints for `--version`:
//
//	go build -ldflags "-X github.com/loctok/loctok/internal/buildinfo.Version=..."
package buildinfo

import (
	"fmt"
	"runtime"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// OS returns the operating system (from runtime.GOOS).
func OS() string {
	return runtime.GOOS
}

// Arch returns the architecture (from runtime.GOARCH).
func Arch() string {
	return runtime.GOARCH
}

// String renders the build metadata as the single line the root command
// prints for --version: "<version> (commit <commit>, built <date>,
// <go version>, <os>/<arch>)". Keeping the format here instead of in
// internal/cli means a test that wants to assert on the real build string
// doesn't need to reach into the CLI package to get it.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s, %s/%s)", Version, Commit, Date, GoVersion, OS(), Arch())
}
