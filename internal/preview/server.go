// Package preview serves the preset catalog and rendered artifacts over
// HTTP without writing anything to the project.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/syssam/heragen"
	"github.com/syssam/heragen/compiler/gen"
	"github.com/syssam/heragen/compiler/ledger"
	"github.com/syssam/heragen/schema/field"
	"github.com/syssam/heragen/schema/preset"
)

// History lists recorded generation runs.
type History interface {
	List(ctx context.Context, f ledger.Filter) ([]ledger.Run, error)
}

// Server is the read-only preview API.
type Server struct {
	gen      *gen.Generator
	history  History
	log      *zap.Logger
	cache    Cache
	cacheTTL time.Duration
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithCache replaces the default in-memory render cache.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// New returns a server rendering through g. history may be nil, in which
// case /history answers 404.
func New(g *gen.Generator, history History, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{gen: g, history: history, log: log, cache: NewMemoryCache()}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/presets", func(r chi.Router) {
		r.Get("/", s.listPresets)
		r.Get("/{key}", s.getPreset)
		r.Get("/{key}/artifacts", s.listArtifacts)
		r.Get("/{key}/artifacts/{feature}", s.getArtifact)
	})
	r.Get("/history", s.listHistory)
	return r
}

// ListenAndServe serves on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("preview server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type presetSummary struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	TitlePlural string `json:"title_plural"`
	Module      string `json:"module"`
	SmartCode   string `json:"smart_code"`
	Route       string `json:"route"`
	Description string `json:"description,omitempty"`
}

func summary(p preset.EntityPreset) presetSummary {
	return presetSummary{
		Key:         string(p.Key),
		Title:       p.Title,
		TitlePlural: p.TitlePlural,
		Module:      string(p.Module),
		SmartCode:   p.SmartCode,
		Route:       gen.ResolvePath(p),
		Description: p.Description,
	}
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	reg := s.gen.Config().Registry
	out := make([]presetSummary, 0, reg.Len())
	module := preset.Module(r.URL.Query().Get("module"))
	for _, p := range reg.All() {
		if module != "" && p.Module != module {
			continue
		}
		out = append(out, summary(p))
	}
	writeJSON(w, http.StatusOK, out)
}

type presetDetail struct {
	Preset preset.EntityPreset `json:"preset"`
	Route  string              `json:"route"`
	Paths  map[string]string   `json:"paths"`
	Fields []field.Config      `json:"fields"`
}

func (s *Server) getPreset(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	paths := make(map[string]string)
	for _, f := range gen.NewRenderer(s.gen.Config().Features...).Features() {
		paths[f.Name] = f.Path(p)
	}
	writeJSON(w, http.StatusOK, presetDetail{
		Preset: p,
		Route:  gen.ResolvePath(p),
		Paths:  paths,
		Fields: field.Derive(p.SmartCode, p.DefaultFields),
	})
}

type artifactView struct {
	Feature string `json:"feature"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

func (s *Server) listArtifacts(w http.ResponseWriter, r *http.Request) {
	artifacts, ok := s.render(w, r)
	if !ok {
		return
	}
	out := make([]artifactView, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, artifactView{Feature: a.Feature, Path: a.Path, Content: string(a.Content)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getArtifact(w http.ResponseWriter, r *http.Request) {
	artifacts, ok := s.render(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "feature")
	for _, a := range artifacts {
		if a.Feature == name {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("X-Artifact-Path", a.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(a.Content)
			return
		}
	}
	writeError(w, http.StatusNotFound, "FEATURE_NOT_FOUND", "no artifact for feature "+name)
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "LEDGER_DISABLED", "run history is disabled")
		return
	}
	f := ledger.Filter{Entity: string(preset.Normalize(r.URL.Query().Get("entity"))), Limit: 50}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		f.Limit = n
	}
	runs, err := s.history.List(r.Context(), f)
	if err != nil {
		s.log.Error("list history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to read history")
		return
	}
	if runs == nil {
		runs = []ledger.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (preset.EntityPreset, bool) {
	p, err := s.gen.Config().Registry.Lookup(chi.URLParam(r, "key"))
	if err != nil {
		s.writeLookupError(w, err)
		return preset.EntityPreset{}, false
	}
	return p, true
}

// render returns the artifacts of the requested preset, cached per entity
// and feature set.
func (s *Server) render(w http.ResponseWriter, r *http.Request) ([]gen.Artifact, bool) {
	entity := preset.Normalize(chi.URLParam(r, "key"))
	key := CacheKey{Entity: string(entity), Features: s.gen.Config().FeatureNames()}.String()
	ctx := r.Context()
	if data, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("cache get", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var artifacts []gen.Artifact
		if err := msgpack.Unmarshal(data, &artifacts); err == nil {
			return artifacts, true
		}
		_ = s.cache.Delete(ctx, key)
	}

	_, artifacts, err := s.gen.Render(string(entity))
	if err != nil {
		s.writeLookupError(w, err)
		return nil, false
	}
	if data, err := msgpack.Marshal(artifacts); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.log.Warn("cache set", zap.String("key", key), zap.Error(err))
		}
	}
	return artifacts, true
}

func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	if heragen.IsEntityTypeNotFound(err) {
		writeError(w, http.StatusNotFound, "ENTITY_TYPE_NOT_FOUND", err.Error())
		return
	}
	s.log.Error("render preview", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}
