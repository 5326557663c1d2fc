// Package config loads diffpreview settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffpreview"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DIFFPREVIEW_PREVIEW_DIFFER.
const EnvPrefix = "DIFFPREVIEW"

// Differ names.
const (
	DifferDMP     = "dmp"
	DifferUdiff   = "udiff"
	DifferDifflib = "difflib"
)

// Output names.
const (
	OutputTUI     = "tui"
	OutputText    = "text"
	OutputJSONL   = "jsonl"
	OutputUnified = "unified"
)

type Config struct {
	Preview PreviewConfig `mapstructure:"preview"`
	Theme   string        `mapstructure:"theme"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
	Output  string        `mapstructure:"output"`
}

// PreviewConfig tunes how previews are composed.
type PreviewConfig struct {
	ContextLines int    `mapstructure:"context_lines"`
	MergeGap     int    `mapstructure:"merge_gap"`
	Ellipsis     string `mapstructure:"ellipsis"`
	Differ       string `mapstructure:"differ"`
	Concurrency  int    `mapstructure:"concurrency"`
	TabWidth     int    `mapstructure:"tab_width"`
}

// CacheConfig configures the on-disk diff cache.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LineSpanOptions returns the line-span tuning of the preview section.
func (c PreviewConfig) LineSpanOptions() diffpreview.LineSpanOptions {
	return diffpreview.LineSpanOptions{ContextLines: c.ContextLines, MergeGap: c.MergeGap}
}

// SlogLevel parses the log level. Unknown levels are an error.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}

// Load reads the config. When path is empty the file is looked up as
// config.yaml in the config directory and the working directory, and a
// missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: failed to get config dir: %w", err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("preview.context_lines", 1)
	v.SetDefault("preview.merge_gap", 1)
	v.SetDefault("preview.ellipsis", diffpreview.DefaultEllipsis)
	v.SetDefault("preview.differ", DifferDMP)
	v.SetDefault("preview.concurrency", 4)
	v.SetDefault("preview.tab_width", 4)
	v.SetDefault("theme", "dark")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output", OutputTUI)
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Preview.Differ {
	case DifferDMP, DifferUdiff, DifferDifflib:
	default:
		return fmt.Errorf("config: unknown differ %q", c.Preview.Differ)
	}
	switch c.Output {
	case OutputTUI, OutputText, OutputJSONL, OutputUnified:
	default:
		return fmt.Errorf("config: unknown output %q", c.Output)
	}
	if c.Preview.ContextLines < 0 {
		return fmt.Errorf("config: preview.context_lines must not be negative, got %d", c.Preview.ContextLines)
	}
	if c.Preview.MergeGap < 0 {
		return fmt.Errorf("config: preview.merge_gap must not be negative, got %d", c.Preview.MergeGap)
	}
	if c.Preview.Concurrency < 0 {
		return fmt.Errorf("config: preview.concurrency must not be negative, got %d", c.Preview.Concurrency)
	}
	if c.Preview.TabWidth < 0 {
		return fmt.Errorf("config: preview.tab_width must not be negative, got %d", c.Preview.TabWidth)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// GetConfigDir returns the XDG config directory for diffpreview.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "diffpreview"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "diffpreview"), nil
}
