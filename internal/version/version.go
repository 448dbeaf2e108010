// Package version holds build metadata injected via -ldflags.
package version

var (
	// Version is the release version.
	Version = "dev"
	// CommitSHA is the git commit the binary was built from.
	CommitSHA = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
