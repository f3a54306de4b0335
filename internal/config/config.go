// Package config loads the optional pdfdoctor YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pdfdoctor/internal/deps"
)

// Validation errors returned by Config.Validate.
var (
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")
	ErrUnknownOS      = errors.New("invalid os: must be one of windows, darwin, linux")
	ErrEmptyAddr      = errors.New("invalid addr: must not be empty")
	ErrUnknownTool    = errors.New("invalid required: unknown tool")
)

// Config is the on-disk configuration. A missing file yields Default().
type Config struct {
	// Timeout bounds one dependency check, e.g. "5s".
	Timeout Duration `yaml:"timeout" json:"timeout" jsonschema:"type=string,description=Probe timeout as a Go duration (e.g. 5s)"`
	// OS overrides host OS detection for remediation hints.
	OS string `yaml:"os,omitempty" json:"os,omitempty" jsonschema:"enum=windows,enum=darwin,enum=linux"`
	// Distro overrides /etc/os-release detection on Linux.
	Distro string `yaml:"distro,omitempty" json:"distro,omitempty" jsonschema:"enum=debian,enum=fedora,enum=arch,enum=suse,enum=alpine"`
	// Required replaces the set of tools whose absence fails a check.
	Required []string `yaml:"required,omitempty" json:"required,omitempty"`
	// Tools adds or overrides tool definitions.
	Tools []deps.ToolInfo `yaml:"tools,omitempty" json:"tools,omitempty"`
	// Addr is the default listen address for serve.
	Addr string `yaml:"addr" json:"addr"`
}

// Duration wraps time.Duration with text (un)marshalling for YAML.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timeout: Duration(deps.DefaultTimeout),
		Addr:    "127.0.0.1:8787",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.OS {
	case "", "windows", "darwin", "linux":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOS, c.OS)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return ErrEmptyAddr
	}
	known := deps.Merge(deps.Tools, c.Tools)
	for _, r := range c.Required {
		if hasID(known, r) {
			continue
		}
		if s := deps.Suggest(strings.TrimSpace(r), known, 3); len(s) > 0 {
			return fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownTool, r, strings.Join(s, ", "))
		}
		return fmt.Errorf("%w %q", ErrUnknownTool, r)
	}
	return nil
}

func hasID(list []deps.ToolInfo, id string) bool {
	id = strings.TrimSpace(id)
	for _, t := range list {
		if strings.EqualFold(string(t.ID), id) {
			return true
		}
	}
	return false
}

// Load reads the config from Path(). A missing file yields Default() and no error.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads the config at p, filling unset fields with defaults.
func LoadFile(p string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Default().Timeout
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = Default().Addr
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}

// Save writes cfg to Path(), creating the directory if needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// ToolList returns the built-in registry merged with configured tools, with
// the Required override applied.
func (c Config) ToolList() []deps.ToolInfo {
	list := deps.Merge(deps.Tools, c.Tools)
	if len(c.Required) == 0 {
		return list
	}
	for i := range list {
		list[i].Required = false
		for _, r := range c.Required {
			if strings.EqualFold(strings.TrimSpace(r), string(list[i].ID)) {
				list[i].Required = true
			}
		}
	}
	return list
}

// Options converts the config into check options.
func (c Config) Options() deps.Options {
	return deps.Options{Timeout: time.Duration(c.Timeout), GOOS: c.OS, Distro: c.Distro}
}
