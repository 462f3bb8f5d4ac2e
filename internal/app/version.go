package app

import "fmt"

// Build metadata, stamped by the release pipeline:
//
//	go build -ldflags "-X github.com/ballotworks/advocacy-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the stamped metadata for startup logs and the health
// endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
