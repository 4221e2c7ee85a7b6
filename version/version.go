package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set by -ldflags; the defaults mark a build without injected values.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Package is the name reported alongside the version.
const Package = "comics"

// Info describes a build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

func injected(v, unset string) bool {
	return v != "" && v != unset
}

// buildSetting returns a VCS stamp recorded by the go tool, or "".
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// GetVersion returns the injected version, the module version, or "development".
func GetVersion() string {
	if injected(Version, "dev") {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetCommit returns the injected or recorded commit hash.
func GetCommit() string {
	if injected(Commit, "unknown") {
		return Commit
	}
	if rev := buildSetting("vcs.revision"); rev != "" {
		return rev
	}
	return "unknown"
}

// GetBuildDate returns the injected build date or the commit time.
func GetBuildDate() string {
	if injected(Date, "unknown") {
		return Date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// GetInfo returns complete version information.
func GetInfo() Info {
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
		Package: Package,
	}
}

// GetFullVersion formats the version with a short commit and the build date
// when they are known.
func GetFullVersion() string {
	return GetInfo().String()
}

func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) <= 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, short)
}

// Fprint writes a multi-line version report to w.
func Fprint(w io.Writer) {
	i := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", i.Package, i.String())
	fmt.Fprintf(w, "Commit: %s\n", i.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", i.Date)
}
