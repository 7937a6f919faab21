package gen

import (
	"fmt"

	"github.com/syssam/heragen/schema/preset"
)

var (
	// FeaturePage renders the client page. It cannot be disabled.
	FeaturePage = Feature{
		Name:        "page",
		Stage:       Stable,
		Default:     true,
		Description: "Client page wired to the universal entity hook",
		template:    "page.tsx.tmpl",
		path:        PagePath,
	}

	// FeatureAPI renders a route handler proxying to the universal entity API.
	FeatureAPI = Feature{
		Name:        "api",
		Stage:       Beta,
		Default:     true,
		Description: "API route handler under src/app/api/v2",
		template:    "route.ts.tmpl",
		path:        APIPath,
	}

	// FeatureReadme renders a README next to the page.
	FeatureReadme = Feature{
		Name:        "readme",
		Stage:       Stable,
		Default:     true,
		Description: "README documenting fields, rules and smart codes",
		template:    "readme.md.tmpl",
		path:        ReadmePath,
	}

	// FeatureConfig writes the derived entity configuration as JSON.
	FeatureConfig = Feature{
		Name:        "config",
		Stage:       Beta,
		Default:     true,
		Description: "entity.config.json with the derived field configuration",
		path:        ConfigPath,
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeaturePage,
		FeatureAPI,
		FeatureReadme,
		FeatureConfig,
	}
)

// FeatureStage describes the stage of a generator feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete but their output may still change.
	Alpha

	// Beta features produce output the web app already depends on.
	Beta

	// Stable features will not change their output format.
	Stable
)

// String implements fmt.Stringer.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// A Feature is one optional artifact of the generator.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// template renders the artifact. Features without a template are
	// rendered by the Renderer directly.
	template string

	// path returns the project relative output path.
	path func(preset.EntityPreset) string
}

// Path returns the output path of the feature's artifact for p.
func (f Feature) Path(p preset.EntityPreset) string {
	return f.path(p)
}

// FeatureByName returns the feature called name.
func FeatureByName(name string) (Feature, error) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, nil
		}
	}
	return Feature{}, NewConfigError("Features", name, "unknown feature")
}

// DefaultFeatures returns the features enabled by default.
func DefaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}
