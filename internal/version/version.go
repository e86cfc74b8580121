package version

// These variables are set at build time via -ldflags, e.g.
// -X github.com/ersatztv/ersatztv-windows/internal/version.Version=v1.2.3
var (
	// Version is the release tag shared with the companion server
	Version = "develop"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// Info returns the short form shown in the tray tooltip
func Info() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + " (" + Commit + ")"
}

// Full returns full version information including build time
func Full() string {
	return Version + " (commit: " + Commit + ", built: " + BuildTime + ")"
}
