package identcase

import (
	"fmt"
	"runtime"
)

var (
	// version, commit and buildTime are set via ldflags during release builds.
	// Development builds report "dev" and "unknown".
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown"
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown"
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was built with
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the program identifier written to server logs
func UserAgent() string {
	return fmt.Sprintf("identcase/%s", version)
}

// BuildInfo returns all build metadata as a multi-line string
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s\nPlatform: %s/%s",
		Version(), Commit(), BuildTime(), GoVersion(), runtime.GOOS, runtime.GOARCH)
}
