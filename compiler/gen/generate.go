package gen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/heragen"
	"github.com/syssam/heragen/compiler/gate"
	"github.com/syssam/heragen/schema/field"
	"github.com/syssam/heragen/schema/preset"
)

// Generator runs the generation pipeline:
//
//	lookup → pre gates → render → stage → post gates → commit → record
//
// A failing post gate discards the staged files, so nothing is left at
// the final paths.
type Generator struct {
	cfg      *Config
	pipeline *gate.Pipeline
	renderer *Renderer
	writer   *StagedWriter
	log      *zap.Logger
}

// New returns a generator for cfg.
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	var opts []gate.Option
	if len(cfg.SkipGates) > 0 {
		opts = append(opts, gate.WithSkip(cfg.SkipGates...))
	}
	if cfg.TypeScriptGate {
		opts = append(opts, gate.WithEnable(gate.NameTypeScript))
	}
	pipeline, err := gate.NewPipeline(opts...)
	if err != nil {
		return nil, NewConfigError("SkipGates", cfg.SkipGates, err.Error())
	}
	return &Generator{
		cfg:      cfg,
		pipeline: pipeline,
		renderer: NewRenderer(cfg.Features...),
		writer:   NewStagedWriter(cfg.Root).WithWorkers(cfg.Workers),
		log:      cfg.Logger,
	}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() *Config { return g.cfg }

// Pipeline returns the enabled gates.
func (g *Generator) Pipeline() *gate.Pipeline { return g.pipeline }

// Metrics returns the writer metrics accumulated by committed runs.
func (g *Generator) Metrics() WriterMetrics { return g.writer.Metrics() }

// ArtifactSummary describes a written artifact.
type ArtifactSummary struct {
	Feature string
	Path    string
	Size    int
	SHA256  string
}

// Result summarizes a generation run of one preset.
type Result struct {
	Key       string
	Module    string
	SmartCode string
	Route     string
	Industry  string
	DryRun    bool
	Fields    []field.Config
	Artifacts []ArtifactSummary
	Gates     []gate.Outcome
	Started   time.Time
	Duration  time.Duration
}

// Render resolves key and renders its artifacts without running gates or
// touching the file system.
func (g *Generator) Render(key string) (preset.EntityPreset, []Artifact, error) {
	p, err := g.cfg.Registry.Lookup(key)
	if err != nil {
		return preset.EntityPreset{}, nil, err
	}
	artifacts, err := g.renderer.Render(p, field.Derive(p.SmartCode, p.DefaultFields))
	if err != nil {
		return p, nil, err
	}
	return p, artifacts, nil
}

// Generate runs the pipeline for the preset registered under key.
func (g *Generator) Generate(ctx context.Context, key string) (*Result, error) {
	start := time.Now()
	p, err := g.cfg.Registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	log := g.log.With(zap.String("entity", string(p.Key)))
	in := &gate.Input{
		Key:      string(p.Key),
		Preset:   p,
		Registry: g.cfg.Registry,
		Root:     g.cfg.Root,
		Page:     PagePath(p),
	}
	res := &Result{
		Key:       string(p.Key),
		Module:    string(p.Module),
		SmartCode: p.SmartCode,
		Route:     ResolvePath(p),
		Industry:  g.cfg.Industry,
		DryRun:    g.cfg.DryRun,
		Started:   start.UTC(),
	}

	outcomes, err := g.pipeline.Run(ctx, in, gate.Pre)
	res.Gates = append(res.Gates, outcomes...)
	if err != nil {
		log.Debug("pre gates failed", zap.Error(err))
		return res, err
	}

	res.Fields = field.Derive(p.SmartCode, p.DefaultFields)
	artifacts, err := g.renderer.Render(p, res.Fields)
	if err != nil {
		return res, err
	}
	res.Artifacts = summarize(artifacts)
	if g.cfg.DryRun {
		res.Duration = time.Since(start)
		log.Info("dry run", zap.Int("artifacts", len(artifacts)))
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	staging, err := g.writer.Stage(ctx, artifacts)
	if err != nil {
		return res, err
	}
	in.Files = staging.Files()
	outcomes, err = g.pipeline.Run(ctx, in, gate.Post)
	res.Gates = append(res.Gates, outcomes...)
	if err != nil {
		if derr := staging.Discard(); derr != nil {
			log.Warn("discard staged files", zap.Error(derr))
		}
		log.Debug("post gates failed", zap.Error(err))
		return res, err
	}
	if err := staging.Commit(); err != nil {
		return res, err
	}
	res.Duration = time.Since(start)
	log.Info("generated",
		zap.String("path", PagePath(p)),
		zap.Int("artifacts", len(artifacts)),
		zap.Duration("took", res.Duration),
	)

	if g.cfg.Ledger != nil {
		if err := g.cfg.Ledger.Record(ctx, res); err != nil {
			log.Warn("record run", zap.Error(err))
		}
	}
	return res, nil
}

// GenerateAll generates every registered preset, running up to
// Config.Workers presets at a time. It returns the results of the
// successful runs sorted by key and an AggregateError of the failures.
func (g *Generator) GenerateAll(ctx context.Context) ([]*Result, error) {
	keys := g.cfg.Registry.Keys()
	results := make([]*Result, len(keys))
	var (
		mu   sync.Mutex
		errs []error
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, key := range keys {
		eg.Go(func() error {
			res, err := g.Generate(ctx, key)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				mu.Unlock()
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	done := make([]*Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			done = append(done, r)
		}
	}
	return done, heragen.NewAggregateError(errs...)
}

// Validate runs the pre gates over every registered preset and checks
// that no two presets resolve to the same output path.
func (g *Generator) Validate(ctx context.Context) error {
	var errs []error
	owners := make(map[string]string)
	for _, p := range g.cfg.Registry.All() {
		in := &gate.Input{Key: string(p.Key), Preset: p, Registry: g.cfg.Registry, Root: g.cfg.Root, Page: PagePath(p)}
		if _, err := g.pipeline.Run(ctx, in, gate.Pre); err != nil {
			if ctx.Err() != nil {
				return err
			}
			errs = append(errs, err)
		}
		for _, f := range g.renderer.Features() {
			path := f.Path(p)
			if other, ok := owners[path]; ok {
				errs = append(errs, fmt.Errorf("heragen: %s and %s both generate %s", other, p.Key, path))
				continue
			}
			owners[path] = string(p.Key)
		}
	}
	return heragen.NewAggregateError(errs...)
}

func summarize(artifacts []Artifact) []ArtifactSummary {
	out := make([]ArtifactSummary, 0, len(artifacts))
	for _, a := range artifacts {
		sum := sha256.Sum256(a.Content)
		out = append(out, ArtifactSummary{
			Feature: a.Feature,
			Path:    a.Path,
			Size:    len(a.Content),
			SHA256:  hex.EncodeToString(sum[:]),
		})
	}
	return out
}
