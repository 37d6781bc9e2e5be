package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/scratch/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	s := "scratch " + Version
	if GitCommit != "unknown" {
		s += " (" + GitCommit + ")"
	}
	if BuildTime != "unknown" {
		s += " built " + BuildTime
	}
	return s
}
