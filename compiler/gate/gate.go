// Package gate implements the quality gates that guard code generation.
//
// Gates are evaluated in a fixed order. Pre-generation gates look at the
// preset only and run before any file is touched. After staging, every
// enabled gate runs again in order, the post-generation gates reading the
// staged artifacts before they are committed to their final paths.
// Evaluation stops at the first failing gate.
//
// A gate returns nil to pass, Skip (or an error wrapping it) when it does
// not apply to the input, and any other error to fail.
package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/heragen/schema/preset"
)

// Skip may be returned by a gate check to indicate that the gate does not
// apply to the input. Evaluation continues with the next gate.
var Skip = errors.New("gate: skip")

// Skipf returns a formatted wrapped Skip decision.
func Skipf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Skip)...)
}

// Phase is the point of the pipeline at which a gate runs.
type Phase int

const (
	_ Phase = iota
	// Pre gates run before rendering.
	Pre
	// Post gates run against staged artifacts before commit.
	Post
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Pre:
		return "pre"
	case Post:
		return "post"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Input is what a gate inspects.
type Input struct {
	// Key is the requested entity type.
	Key string
	// Preset is the resolved preset.
	Preset preset.EntityPreset
	// Registry the key is resolved against.
	Registry *preset.Registry
	// Root is the project root directory.
	Root string
	// Page is the project relative path of the generated page.
	Page string
	// Files maps project relative artifact paths to the file holding
	// their content. During the post phase these are the staged files.
	Files map[string]string
}

// CheckFunc evaluates a gate against in.
type CheckFunc func(ctx context.Context, in *Input) error

// A Gate is one named validation step.
type Gate struct {
	// Name identifies the gate in output and configuration.
	Name string
	// Phase the gate runs in.
	Phase Phase
	// Mandatory gates cannot be skipped through configuration.
	Mandatory bool
	// Default reports whether the gate is enabled without configuration.
	Default bool
	// Description is a one-line summary shown by the CLI.
	Description string

	check CheckFunc
}

// New returns a custom gate. Custom gates are enabled by default.
func New(name string, phase Phase, check CheckFunc) Gate {
	return Gate{Name: name, Phase: phase, Default: true, check: check}
}

// Check runs the gate.
func (g Gate) Check(ctx context.Context, in *Input) error {
	if g.check == nil {
		return Skip
	}
	return g.check(ctx, in)
}
