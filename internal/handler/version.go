package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports which build of the item daemon is deployed.
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, VersionInfo{
			Version:   ResolveVersion(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// ResolveVersion prefers the build-time version, then $VERSION.
func ResolveVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
