// Package version reports the version and build metadata of the comics binary.
//
// Values injected at build time take precedence:
//
//	-ldflags "-X github.com/dendrascience/comics/version.Version=v1.0.0 -X github.com/dendrascience/comics/version.Commit=abc123 -X github.com/dendrascience/comics/version.Date=2026-01-01T00:00:00Z"
//
// Without them the module version and VCS stamps from debug.ReadBuildInfo
// are used, and development builds report "development".
package version
