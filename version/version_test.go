package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "version only",
			info: Info{Version: "v1.2.0", Commit: "unknown", Date: "unknown"},
			want: "v1.2.0",
		},
		{
			name: "short commit ignored",
			info: Info{Version: "v1.2.0", Commit: "abc", Date: "2026-01-01"},
			want: "v1.2.0",
		},
		{
			name: "commit without date",
			info: Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "unknown"},
			want: "v1.2.0 (0123456)",
		},
		{
			name: "commit and date",
			info: Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "2026-01-01"},
			want: "v1.2.0 (0123456, built 2026-01-01)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInjectedValuesWin(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v9.9.9", "fedcba9876543210", "2026-10-19"

	if got := GetFullVersion(); got != "v9.9.9 (fedcba9, built 2026-10-19)" {
		t.Errorf("GetFullVersion() = %q", got)
	}

	var buf bytes.Buffer
	Fprint(&buf)
	if !strings.HasPrefix(buf.String(), "comics version v9.9.9") {
		t.Errorf("Fprint wrote %q", buf.String())
	}
}
