// Package config loads ctmembers settings.
//
// Settings resolve in this order, later sources winning:
//
//	defaults -> config file (.yaml, .yml or .toml) -> CTMEMBERS_* environment
//
// Command-line flags are applied on top by package cli. The merged result is
// checked against an embedded CUE schema before use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ctmembers/internal/contract"
)

const (
	EnvRoot     = "CTMEMBERS_ROOT"
	EnvKind     = "CTMEMBERS_KIND"
	EnvFormat   = "CTMEMBERS_FORMAT"
	EnvLogLevel = "CTMEMBERS_LOG_LEVEL"
)

// Config holds resolved settings.
type Config struct {
	// Root is the ctfs mount point.
	Root string `yaml:"root" toml:"root"`

	// Kind is the ctfs directory status files are opened under.
	Kind string `yaml:"kind" toml:"kind"`

	// Format is the report format: text, json or yaml.
	Format string `yaml:"format" toml:"format"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Root:     contract.DefaultRoot,
		Kind:     contract.DefaultKind,
		Format:   "text",
		LogLevel: "warn",
	}
}

// Load resolves settings from defaults, the optional file at path and the
// environment, then validates them. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	ApplyEnv(&cfg, os.LookupEnv)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	var file Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q (want .yaml, .yml or .toml)", path, ext)
	}
	merge(cfg, file)
	return nil
}

// merge copies the non-empty fields of src onto dst.
func merge(dst *Config, src Config) {
	if v := strings.TrimSpace(src.Root); v != "" {
		dst.Root = v
	}
	if v := strings.TrimSpace(src.Kind); v != "" {
		dst.Kind = v
	}
	if v := strings.TrimSpace(src.Format); v != "" {
		dst.Format = v
	}
	if v := strings.TrimSpace(src.LogLevel); v != "" {
		dst.LogLevel = strings.ToLower(v)
	}
}

// ApplyEnv overlays CTMEMBERS_* variables found through lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	var env Config
	if v, ok := lookup(EnvRoot); ok {
		env.Root = v
	}
	if v, ok := lookup(EnvKind); ok {
		env.Kind = v
	}
	if v, ok := lookup(EnvFormat); ok {
		env.Format = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		env.LogLevel = v
	}
	merge(cfg, env)
}
