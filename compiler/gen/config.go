package gen

import (
	"context"
	"runtime"
	"slices"

	"go.uber.org/zap"

	"github.com/syssam/heragen/schema/preset"
)

// Recorder persists the result of a committed generation run.
type Recorder interface {
	Record(ctx context.Context, r *Result) error
}

// Config holds the settings of a generation run. It is built once by
// NewConfig and not modified afterwards.
type Config struct {
	// Root is the web application's project root.
	Root string

	// Features are the optional artifacts to render besides the page.
	Features []Feature

	// Industry is recorded in the run summary and ledger. It does not
	// influence preset selection.
	Industry string

	// SkipGates names gates to leave out.
	SkipGates []string

	// TypeScriptGate enables the `tsc --noEmit` post gate.
	TypeScriptGate bool

	// Workers bounds parallel file staging and multi-preset runs.
	Workers int

	// DryRun renders and runs the pre gates but writes nothing.
	DryRun bool

	// Logger receives structured progress logs.
	Logger *zap.Logger

	// Registry resolves entity types.
	Registry *preset.Registry

	// Ledger records committed runs. Optional.
	Ledger Recorder
}

// HasFeature reports whether the feature called name is enabled.
func (c *Config) HasFeature(name string) bool {
	if name == FeaturePage.Name {
		return true
	}
	return slices.ContainsFunc(c.Features, func(f Feature) bool { return f.Name == name })
}

// FeatureNames returns the names of the enabled features, page first.
func (c *Config) FeatureNames() []string {
	names := []string{FeaturePage.Name}
	for _, f := range c.Features {
		if f.Name != FeaturePage.Name {
			names = append(names, f.Name)
		}
	}
	return names
}

func defaultConfig() *Config {
	return &Config{
		Root:     ".",
		Features: DefaultFeatures(),
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   zap.NewNop(),
	}
}

func (c *Config) validate() error {
	if c.Root == "" {
		return NewConfigError("Root", nil, "project root cannot be empty")
	}
	if c.Workers <= 0 {
		return NewConfigError("Workers", c.Workers, "must be positive")
	}
	if c.Registry == nil {
		c.Registry = preset.Default()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}
