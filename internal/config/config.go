package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	cerr "github.com/barun-bash/cfront/internal/errors"
	"github.com/barun-bash/cfront/internal/profile"
)

// Config holds project configuration loaded from .cfront/config.toml.
type Config struct {
	Profile        string                  `toml:"profile,omitempty"`         // active profile name
	MaxDiagnostics int                     `toml:"max_diagnostics,omitempty"` // 0 means the collector default
	LogLevel       string                  `toml:"log_level,omitempty"`       // debug, info, warn, error
	Theme          string                  `toml:"theme,omitempty"`           // terminal color theme
	Profiles       map[string]profile.Spec `toml:"profiles,omitempty"`        // project-defined profiles
}

// Environment variables that override file values.
const (
	EnvProfile  = "CFRONT_PROFILE"
	EnvLogLevel = "CFRONT_LOG_LEVEL"
)

// configFileName is the configuration file path relative to the project root.
const configFileName = ".cfront/config.toml"

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Profile:  profile.DefaultName,
		LogLevel: "warn",
		Theme:    "default",
	}
}

// Path returns the config file location for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, configFileName)
}

// Load reads the project configuration from .cfront/config.toml in the given
// project directory. If the file doesn't exist, it returns Default (not an
// error). Environment variables override file values.
func Load(projectDir string) (*Config, error) {
	cfg, err := load(Path(projectDir), true)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads configuration from an explicit path. Unlike Load, a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	cfg, err := load(path, false)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func load(path string, missingOK bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if missingOK && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvProfile); v != "" {
		c.Profile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks field values. Custom profiles are validated here so a
// broken profile is reported at load time, not on first use.
func (c *Config) Validate() error {
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must not be negative, got %d", c.MaxDiagnostics)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, name := range c.ProfileNames() {
		spec := c.Profiles[name]
		if spec.Name == "" {
			spec.Name = name
		}
		if _, err := profile.Build(spec); err != nil {
			return err
		}
	}
	return nil
}

// Level converts LogLevel to an slog level. Empty means warn.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	return level, nil
}

// ResolveProfile returns the active profile, looking in the config's own
// profiles before the built-ins.
func (c *Config) ResolveProfile() (*profile.Profile, error) {
	return profile.Lookup(c.Profile, c.Profiles)
}

// DiagnosticLimit returns the configured cap, or the collector default.
func (c *Config) DiagnosticLimit() int {
	if c.MaxDiagnostics <= 0 {
		return cerr.DefaultLimit
	}
	return c.MaxDiagnostics
}

// ProfileNames returns the names of config-defined profiles, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for n := range c.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Save writes the config to .cfront/config.toml, creating the directory if
// needed.
func Save(projectDir string, cfg *Config) error {
	dir := filepath.Join(projectDir, ".cfront")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating .cfront directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(Path(projectDir), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}
	return nil
}
