// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads the sharex CLI settings from defaults, an optional YAML
// file, SHAREX_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the configuration directory.
	AppName = "sharex"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "SHAREX"
)

// Configuration keys.
const (
	KeySharexPath = "sharex_path"
	KeyTimeout    = "timeout"
	KeySearchDirs = "search_dirs"
	KeyOutput     = "output"
	KeyDebug      = "debug"
	KeyLogFormat  = "log_format"
	KeyColor      = "color"
	KeyLogLevel   = "log_level"
)

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"path":       KeySharexPath,
	"timeout":    KeyTimeout,
	"search-dir": KeySearchDirs,
	"output":     KeyOutput,
	"debug":      KeyDebug,
	"log-format": KeyLogFormat,
	"color":      KeyColor,
	"log-level":  KeyLogLevel,
}

var (
	// ErrConfigNotFound indicates an explicitly requested config file is missing.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidConfig indicates a setting with an unsupported value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the effective settings.
type Config struct {
	// SharexPath is the preferred ShareX executable path. It may contain
	// %NAME% environment references.
	SharexPath string `mapstructure:"sharex_path"`
	// Timeout bounds each ShareX invocation.
	Timeout time.Duration `mapstructure:"timeout"`
	// SearchDirs are extra directories searched after the built-in install
	// locations.
	SearchDirs []string `mapstructure:"search_dirs"`
	// Output is the CLI output format: default or json.
	Output string `mapstructure:"output"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug"`
	// LogFormat is text or json.
	LogFormat string `mapstructure:"log_format"`
	// LogLevel is debug, info, warn or error. Debug overrides it.
	LogLevel string `mapstructure:"log_level"`
	// Color is auto, always or never.
	Color string `mapstructure:"color"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Timeout:    15 * time.Second,
		SearchDirs: []string{},
		Output:     "default",
		LogFormat:  "text",
		LogLevel:   "warn",
		Color:      "auto",
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist.
	ConfigFile string
	// ConfigDir overrides the directory searched for config.yaml.
	ConfigDir string
	// Flags are bound over every other source when they were set.
	Flags *pflag.FlagSet
}

// Dir returns the sharex configuration directory: %APPDATA%\sharex on Windows
// and $XDG_CONFIG_HOME/sharex (defaulting to ~/.config/sharex) elsewhere.
func Dir() (string, error) {
	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// Load builds the effective configuration. It returns the config and the path
// of the file it read, which is empty when no file was used.
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeySharexPath, defaults.SharexPath)
	v.SetDefault(KeyTimeout, defaults.Timeout)
	v.SetDefault(KeySearchDirs, defaults.SearchDirs)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyDebug, defaults.Debug)
	v.SetDefault(KeyLogFormat, defaults.LogFormat)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyColor, defaults.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Accept SHAREX_PATH as well as the prefixed form.
	if err := v.BindEnv(KeySharexPath, EnvPrefix+"_PATH", EnvPrefix+"_SHAREX_PATH"); err != nil {
		return nil, "", fmt.Errorf("failed to bind environment: %w", err)
	}

	path, err := configFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, path, nil
}

// configFile picks the file to read: the explicit one, else config.yaml in the
// configuration directory when it exists.
func configFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return "", err
		}
		dir = d
	}

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// Validate checks the enumerated settings. Non-positive timeouts are passed
// through; the invoker rejects them before starting anything.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "default", "json":
	default:
		return fmt.Errorf("%w: output %q (valid options: default, json)", ErrInvalidConfig, c.Output)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (valid options: text, json)", ErrInvalidConfig, c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q (valid options: debug, info, warn, error)", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.Color) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q (valid options: auto, always, never)", ErrInvalidConfig, c.Color)
	}
	return nil
}

// StructuredLogs reports whether logs should be JSON.
func (c *Config) StructuredLogs() bool {
	return strings.EqualFold(c.LogFormat, "json")
}

// Settings is the display form of Config, with the timeout as a duration
// string.
type Settings struct {
	SharexPath string   `yaml:"sharex_path" json:"sharexPath"`
	Timeout    string   `yaml:"timeout" json:"timeout"`
	SearchDirs []string `yaml:"search_dirs" json:"searchDirs"`
	Output     string   `yaml:"output" json:"output"`
	Debug      bool     `yaml:"debug" json:"debug"`
	LogFormat  string   `yaml:"log_format" json:"logFormat"`
	LogLevel   string   `yaml:"log_level" json:"logLevel"`
	Color      string   `yaml:"color" json:"color"`
}

// Settings returns the display form of c.
func (c *Config) Settings() Settings {
	dirs := c.SearchDirs
	if dirs == nil {
		dirs = []string{}
	}
	return Settings{
		SharexPath: c.SharexPath,
		Timeout:    c.Timeout.String(),
		SearchDirs: dirs,
		Output:     c.Output,
		Debug:      c.Debug,
		LogFormat:  c.LogFormat,
		LogLevel:   c.LogLevel,
		Color:      c.Color,
	}
}

// Show writes cfg to w as YAML.
func Show(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Settings()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
