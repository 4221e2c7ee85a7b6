// Package config loads comics settings from defaults, an optional YAML file
// and COMICS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dendrascience/comics/comic"
	"github.com/dendrascience/comics/tree"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and the env prefix.
	AppName = "comics"
	// EnvPrefix is prepended to every environment override, e.g. COMICS_STAGING_DIR.
	EnvPrefix = "COMICS"
)

// Config holds the resolved settings.
type Config struct {
	StagingDir string        `mapstructure:"staging_dir"`
	Verify     bool          `mapstructure:"verify"`
	Log        LogConfig     `mapstructure:"log"`
	Pages      PagesConfig   `mapstructure:"pages"`
	Flatten    FlattenConfig `mapstructure:"flatten"`
	Rename     RenameConfig  `mapstructure:"rename"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type PagesConfig struct {
	Label   string `mapstructure:"label"`
	Pattern string `mapstructure:"pattern"`
	Remove  bool   `mapstructure:"remove"`
}

type FlattenConfig struct {
	Collision string `mapstructure:"collision"`
}

type RenameConfig struct {
	Cleanup bool `mapstructure:"cleanup"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		StagingDir: comic.DefaultStagingDir,
		Verify:     true,
		Log:        LogConfig{Level: "info"},
		Pages:      PagesConfig{Pattern: `\d+`},
		Flatten:    FlattenConfig{Collision: tree.CollisionOverwrite.String()},
	}
}

// Dir returns $XDG_CONFIG_HOME/comics, falling back to ~/.config/comics.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName)
	}
	return "." + AppName
}

// New returns a viper instance with defaults and env overrides registered.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("staging_dir", d.StagingDir)
	v.SetDefault("verify", d.Verify)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("pages.label", d.Pages.Label)
	v.SetDefault("pages.pattern", d.Pages.Pattern)
	v.SetDefault("pages.remove", d.Pages.Remove)
	v.SetDefault("flatten.collision", d.Flatten.Collision)
	v.SetDefault("rename.cleanup", d.Rename.Cleanup)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result. An explicit
// path must exist; the default location is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be typed by the decoder.
func (c Config) Validate() error {
	if c.StagingDir == "" {
		return errors.New("staging_dir must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := tree.ParseCollisionPolicy(c.Flatten.Collision); err != nil {
		return fmt.Errorf("flatten.collision: %w", err)
	}
	return nil
}

// Logger builds the CLI logger at the configured level.
func (c Config) Logger() *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: AppName,
		Level:  level,
	})
}

// ComicOptions converts the settings into comic.Open options.
func (c Config) ComicOptions(logger *log.Logger) []comic.Option {
	policy, _ := tree.ParseCollisionPolicy(c.Flatten.Collision)
	return []comic.Option{
		comic.WithStagingDir(c.StagingDir),
		comic.WithVerify(c.Verify),
		comic.WithCollisionPolicy(policy),
		comic.WithLogger(logger),
	}
}
