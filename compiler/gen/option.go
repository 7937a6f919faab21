package gen

import (
	"errors"

	"go.uber.org/zap"

	"github.com/syssam/heragen/schema/preset"
)

// Option configures code generation.
type Option func(*Config) error

// WithRoot sets the project root generated paths are relative to.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Root", nil, "project root cannot be empty")
		}
		c.Root = dir
		return nil
	}
}

// WithFeatures sets the optional artifacts by feature name. The page is
// always rendered.
func WithFeatures(names ...string) Option {
	return func(c *Config) error {
		features := make([]Feature, 0, len(names))
		for _, n := range names {
			f, err := FeatureByName(n)
			if err != nil {
				return err
			}
			if f.Name != FeaturePage.Name {
				features = append(features, f)
			}
		}
		c.Features = features
		return nil
	}
}

// WithIndustry records an industry tag for the run.
func WithIndustry(tag string) Option {
	return func(c *Config) error {
		c.Industry = tag
		return nil
	}
}

// WithSkipGates disables the named quality gates.
func WithSkipGates(names ...string) Option {
	return func(c *Config) error {
		c.SkipGates = append(c.SkipGates, names...)
		return nil
	}
}

// WithTypeScriptGate enables or disables the TypeScript compile gate.
func WithTypeScriptGate(enabled bool) Option {
	return func(c *Config) error {
		c.TypeScriptGate = enabled
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithDryRun makes runs render and validate without writing files.
func WithDryRun(dryRun bool) Option {
	return func(c *Config) error {
		c.DryRun = dryRun
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithRegistry sets the preset registry. Defaults to preset.Default().
func WithRegistry(r *preset.Registry) Option {
	return func(c *Config) error {
		if r == nil {
			return NewConfigError("Registry", nil, "registry cannot be nil")
		}
		c.Registry = r
		return nil
	}
}

// WithLedger records committed runs in r.
func WithLedger(r Recorder) Option {
	return func(c *Config) error {
		c.Ledger = r
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
