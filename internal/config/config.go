// Package config handles XDG directories, the config file and environment overrides.
//
// Values are resolved in priority order:
//  1. Built-in defaults
//  2. Config file ($XDG_CONFIG_HOME/todofs/config.toml or ~/.config/todofs/config.toml)
//  3. Environment variables (TODOFS_*)
//  4. CLI flags (applied by the dispatcher)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"todofs/internal/storage"
)

const (
	// AppName is the application directory name.
	AppName = "todofs"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.toml"
)

// Environment variables that override the config file.
const (
	EnvRoot     = "TODOFS_ROOT"
	EnvList     = "TODOFS_LIST"
	EnvLogLevel = "TODOFS_LOG_LEVEL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Root is the directory holding one subdirectory per list.
	Root string

	// List is the list used when a command does not name one.
	List string

	// LogLevel and LogFormat configure the logger.
	LogLevel  string
	LogFormat string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors the keys accepted in config.toml.
type fileConfig struct {
	Root      string `toml:"root"`
	List      string `toml:"list"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// New creates a Config with defaults and the given or default config directory.
// It does not read the config file or the environment.
func New(configDir string) (*Config, error) {
	dir := ExpandPath(configDir)
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:       dir,
		Root:      DefaultDataDir(),
		List:      storage.DefaultList,
		LogLevel:  "warn",
		LogFormat: "text",
	}, nil
}

// Load creates a Config and applies the config file and environment on top
// of the defaults. A missing config file is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	cfg.loadEnv()

	if err := storage.ValidateList(cfg.List); err != nil {
		return nil, fmt.Errorf("default list: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile() error {
	var fc fileConfig
	_, err := toml.DecodeFile(c.ConfigPath(), &fc)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config file %s: %w", c.ConfigPath(), err)
	}

	if fc.Root != "" {
		c.Root = ExpandPath(fc.Root)
	}
	if fc.List != "" {
		c.List = fc.List
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	return nil
}

func (c *Config) loadEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		c.Root = ExpandPath(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvList)); v != "" {
		c.List = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDataDir returns the default storage root.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(AppName, "data")
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if the config file exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
