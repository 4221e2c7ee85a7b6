package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dendrascience/comics/archive"
	"github.com/dendrascience/comics/comic"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want %+v", cfg, DefaultConfig())
	}
	if cfg.StagingDir != comic.DefaultStagingDir || cfg.Pages.Pattern != `\d+` || !cfg.Verify {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
staging_dir: .staging
verify: false
log:
  level: debug
pages:
  label: "Page "
  pattern: "p\\d+"
  remove: true
flatten:
  collision: rename
rename:
  cleanup: true
`)

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{
		StagingDir: ".staging",
		Verify:     false,
		Log:        LogConfig{Level: "debug"},
		Pages:      PagesConfig{Label: "Page ", Pattern: `p\d+`, Remove: true},
		Flatten:    FlattenConfig{Collision: "rename"},
		Rename:     RenameConfig{Cleanup: true},
	}
	if cfg != want {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoad_DefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if err := os.MkdirAll(filepath.Join(xdg, AppName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(xdg, AppName, "config.yaml"), []byte("pages:\n  label: Seite\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pages.Label != "Seite" {
		t.Errorf("Pages.Label = %q, want Seite", cfg.Pages.Label)
	}
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("COMICS_PAGES_LABEL", "Page ")
	t.Setenv("COMICS_STAGING_DIR", "_work")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pages.Label != "Page " || cfg.StagingDir != "_work" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing explicit file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name: "bad log level",
			path: func(t *testing.T) string { return writeConfig(t, "log:\n  level: loud\n") },
		},
		{
			name: "bad collision policy",
			path: func(t *testing.T) string { return writeConfig(t, "flatten:\n  collision: skip\n") },
		},
		{
			name: "empty staging dir",
			path: func(t *testing.T) string { return writeConfig(t, "staging_dir: \"\"\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(New(), tt.path(t)); err == nil {
				t.Error("expected Load to fail")
			}
		})
	}
}

func TestComicOptions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(src, "01.jpg"), []byte("x"), 0o644)
	path := filepath.Join(dir, "comic.cbz")
	if err := archive.Compress(src, path, true); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.StagingDir = filepath.Join(dir, "_other")
	c, err := comic.Open(path, cfg.ComicOptions(cfg.Logger())...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if c.StagingDir() != cfg.StagingDir {
		t.Errorf("StagingDir = %q, want %q", c.StagingDir(), cfg.StagingDir)
	}
}
