package gate

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Outcome records how a gate finished.
type Outcome struct {
	Gate    string
	Phase   Phase
	Skipped bool
	Reason  string
}

// Pipeline evaluates gates in order.
type Pipeline struct {
	gates []Gate
}

// Option configures a Pipeline.
type Option func(*settings) error

type settings struct {
	gates   []Gate
	enable  map[string]bool
	disable map[string]bool
}

// WithGates replaces the gate list.
func WithGates(gates ...Gate) Option {
	return func(s *settings) error {
		s.gates = gates
		return nil
	}
}

// WithSkip disables the named gates. Mandatory gates cannot be skipped.
func WithSkip(names ...string) Option {
	return func(s *settings) error {
		for _, n := range names {
			s.disable[n] = true
		}
		return nil
	}
}

// WithEnable enables gates that are off by default.
func WithEnable(names ...string) Option {
	return func(s *settings) error {
		for _, n := range names {
			s.enable[n] = true
		}
		return nil
	}
}

// NewPipeline builds a pipeline from the built-in gates and opts.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	s := &settings{
		gates:   Defaults(),
		enable:  make(map[string]bool),
		disable: make(map[string]bool),
	}
	var errs []error
	for _, opt := range opts {
		if err := opt(s); err != nil {
			errs = append(errs, err)
		}
	}
	known := make(map[string]Gate, len(s.gates))
	for _, g := range s.gates {
		known[g.Name] = g
	}
	for _, names := range []map[string]bool{s.enable, s.disable} {
		for n := range names {
			if _, ok := known[n]; !ok {
				errs = append(errs, fmt.Errorf("gate: unknown gate %q", n))
			}
		}
	}
	for n := range s.disable {
		if g, ok := known[n]; ok && g.Mandatory {
			errs = append(errs, fmt.Errorf("gate: %s cannot be skipped", n))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	p := &Pipeline{}
	for _, g := range s.gates {
		on := g.Default || s.enable[g.Name]
		if s.disable[g.Name] {
			on = false
		}
		if on {
			p.gates = append(p.gates, g)
		}
	}
	return p, nil
}

// Gates returns the enabled gates.
func (p *Pipeline) Gates() []Gate {
	return slices.Clone(p.gates)
}

// Run evaluates the enabled gates of phase against in. The post phase
// re-runs the pre gates before its own. It stops at the first failure and
// returns a *Error identifying the gate.
func (p *Pipeline) Run(ctx context.Context, in *Input, phase Phase) ([]Outcome, error) {
	var outcomes []Outcome
	for _, g := range p.gates {
		if g.Phase != phase && phase != Post {
			continue
		}
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		switch err := g.Check(ctx, in); {
		case err == nil:
			outcomes = append(outcomes, Outcome{Gate: g.Name, Phase: phase})
		case errors.Is(err, Skip):
			outcomes = append(outcomes, Outcome{Gate: g.Name, Phase: phase, Skipped: true, Reason: err.Error()})
		default:
			return outcomes, annotate(err, g, phase, in.Key)
		}
	}
	return outcomes, nil
}

func annotate(err error, g Gate, phase Phase, key string) error {
	gerr, ok := AsError(err)
	if !ok {
		return &Error{Gate: g.Name, Phase: phase, Key: key, Cause: err}
	}
	out := *gerr
	out.Gate, out.Phase, out.Key = g.Name, phase, key
	return &out
}
