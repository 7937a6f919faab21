// Package config loads the project settings file, .heragen.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/syssam/heragen/compiler/gate"
	"github.com/syssam/heragen/compiler/gen"
	"github.com/syssam/heragen/schema/preset"
)

// FileName is the settings file looked up in the project root.
const FileName = ".heragen.yaml"

// Config is the content of .heragen.yaml.
type Config struct {
	// Root is the web application's project root. Relative paths are
	// resolved against the directory holding the settings file.
	Root string `yaml:"root"`

	// Industry is the default --industry tag.
	Industry string `yaml:"industry,omitempty"`

	// Overlay is a YAML file with additional presets.
	Overlay string `yaml:"overlay,omitempty"`

	// Features lists the artifacts to render. Nil means the defaults;
	// the page is always rendered.
	Features []string `yaml:"features,omitempty"`

	SkipGates  []string `yaml:"skip_gates,omitempty"`
	TypeScript bool     `yaml:"typescript,omitempty"`

	// Workers bounds parallelism. Zero uses GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`

	// Ledger turns the run history on or off.
	Ledger bool `yaml:"ledger"`

	Serve ServeConfig `yaml:"serve"`
	Watch WatchConfig `yaml:"watch"`

	dir string
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // e.g. 300ms
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Root:   ".",
		Ledger: true,
		Serve:  ServeConfig{Addr: "127.0.0.1:8787"},
		Watch:  WatchConfig{Debounce: "300ms"},
		dir:    ".",
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if root := os.Getenv("HERAGEN_ROOT"); root != "" {
		c.Root = root
	}
	if industry := os.Getenv("HERAGEN_INDUSTRY"); industry != "" {
		c.Industry = industry
	}
	if overlay := os.Getenv("HERAGEN_OVERLAY"); overlay != "" {
		c.Overlay = overlay
	}
	if v := os.Getenv("HERAGEN_TYPESCRIPT"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.TypeScript = on
		}
	}
}

// ProjectRoot returns Root resolved against the settings file directory.
func (c *Config) ProjectRoot() string {
	return c.resolve(c.Root)
}

// OverlayPath returns the resolved overlay path, or "" when none is set.
func (c *Config) OverlayPath() string {
	if c.Overlay == "" {
		return ""
	}
	return c.resolve(c.Overlay)
}

// DebounceDuration returns the watch debounce, defaulting to 300ms.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Validate checks feature and gate names and numeric settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Root == "" {
		errs = append(errs, errors.New("config: root cannot be empty"))
	}
	for _, name := range c.Features {
		if _, err := gen.FeatureByName(name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.SkipGates) > 0 {
		if _, err := gate.NewPipeline(gate.WithSkip(c.SkipGates...)); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("config: workers must not be negative, got %d", c.Workers))
	}
	if c.Watch.Debounce != "" {
		if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
			errs = append(errs, fmt.Errorf("config: watch.debounce: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Registry returns the preset registry: the built-in catalog plus the
// overlay presets, if an overlay is configured.
func (c *Config) Registry() (*preset.Registry, error) {
	path := c.OverlayPath()
	if path == "" {
		return preset.Default(), nil
	}
	ov, err := preset.LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return ov.Registry()
}

// Options maps the settings to generator options. The ledger and logger
// are owned by the caller and not included.
func (c *Config) Options() ([]gen.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	opts := []gen.Option{
		gen.WithRoot(c.ProjectRoot()),
		gen.WithRegistry(reg),
		gen.WithIndustry(c.Industry),
		gen.WithTypeScriptGate(c.TypeScript),
	}
	if c.Features != nil {
		opts = append(opts, gen.WithFeatures(c.Features...))
	}
	if len(c.SkipGates) > 0 {
		opts = append(opts, gen.WithSkipGates(c.SkipGates...))
	}
	if c.Workers > 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	return opts, nil
}
