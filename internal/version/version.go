package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version, CommitSHA, and BuildDate are set via ldflags at build time.
// Example: go build -ldflags "-X .../version.Version=0.2.0 -X .../version.CommitSHA=abc1234 -X .../version.BuildDate=2026-10-01"
var (
	Version   = "0.1.0"
	CommitSHA = "dev"
	BuildDate = "unknown"
)

// Info returns a human-readable version string.
// For dev builds: "0.1.0"
// For release builds: "0.1.0 (abc1234, 2026-10-01)"
func Info() string {
	v := strings.TrimPrefix(Version, "v")
	commit, date := resolve()
	if commit == "" {
		return v
	}
	return fmt.Sprintf("%s (%s, %s)", v, commit, date)
}

// Details returns labeled build facts for the version command, in display order.
func Details() [][2]string {
	commit, date := resolve()
	if commit == "" {
		commit = "dev"
	}
	return [][2]string{
		{"Version", strings.TrimPrefix(Version, "v")},
		{"Commit", commit},
		{"Built", date},
		{"Go", runtime.Version()},
		{"OS/Arch", runtime.GOOS + "/" + runtime.GOARCH},
	}
}

// resolve prefers ldflags values and falls back to the VCS stamp that
// go build embeds. An empty commit means neither is available.
func resolve() (commit, date string) {
	if CommitSHA != "dev" && CommitSHA != "" {
		return CommitSHA, BuildDate
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", BuildDate
	}
	date = BuildDate
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.time":
			date = s.Value
		}
	}
	return commit, date
}
