package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string   `json:"commit_hash"`
	BuildTime  string   `json:"build_time"`
	Version    string   `json:"version"`
	GoVersion  string   `json:"go_version"`
	Platform   string   `json:"platform"`
	CGO        bool     `json:"cgo"`
	Tags       []string `json:"tags,omitempty"`
}

// Get returns the current version information
func Get() Info {
	info := Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.CGO, info.Tags = buildSettings(bi.Settings)
	}
	return info
}

// buildSettings extracts CGO_ENABLED and -tags from the binary's recorded
// build settings.
func buildSettings(settings []debug.BuildSetting) (cgo bool, tags []string) {
	for _, s := range settings {
		switch s.Key {
		case "CGO_ENABLED":
			cgo = s.Value == "1"
		case "-tags":
			for _, tag := range strings.Split(s.Value, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
		}
	}
	return cgo, tags
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("scm %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("scm dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
