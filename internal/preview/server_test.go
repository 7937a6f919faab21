package preview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/heragen/compiler/gen"
	"github.com/syssam/heragen/compiler/ledger"
)

type stubHistory struct {
	runs []ledger.Run
	err  error
	got  ledger.Filter
}

func (s *stubHistory) List(_ context.Context, f ledger.Filter) ([]ledger.Run, error) {
	s.got = f
	return s.runs, s.err
}

func newServer(t *testing.T, h History) *Server {
	t.Helper()
	cfg, err := gen.NewConfig(gen.WithRoot(t.TempDir()))
	require.NoError(t, err)
	g, err := gen.New(cfg)
	require.NoError(t, err)
	return New(g, h, nil)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestServer(t *testing.T) {
	s := newServer(t, nil)

	t.Run("healthz answers ok", func(t *testing.T) {
		rec := get(t, s, "/healthz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("lists every preset", func(t *testing.T) {
		rec := get(t, s, "/presets")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]presetSummary](t, rec)
		assert.Len(t, list, s.gen.Config().Registry.Len())
	})

	t.Run("filters presets by module", func(t *testing.T) {
		rec := get(t, s, "/presets?module=CRM")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]presetSummary](t, rec)
		require.NotEmpty(t, list)
		for _, p := range list {
			assert.Equal(t, "CRM", p.Module)
		}
	})

	t.Run("describes a preset with its paths and fields", func(t *testing.T) {
		rec := get(t, s, "/presets/contact")
		require.Equal(t, http.StatusOK, rec.Code)
		d := decode[presetDetail](t, rec)
		assert.Equal(t, "CONTACT", string(d.Preset.Key))
		assert.Equal(t, "crm/contacts", d.Route)
		assert.Equal(t, "src/app/crm/contacts/page.tsx", d.Paths["page"])
		require.NotEmpty(t, d.Fields)
		assert.Equal(t, "email", d.Fields[0].Name)
	})

	t.Run("renders artifacts without writing them", func(t *testing.T) {
		rec := get(t, s, "/presets/CONTACT/artifacts")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]artifactView](t, rec)
		require.NotEmpty(t, list)
		assert.Equal(t, "page", list[0].Feature)
		assert.True(t, strings.HasPrefix(list[0].Content, "'use client'"))
		assert.NoDirExists(t, s.gen.Config().Root+"/src")
	})

	t.Run("serves a single artifact as text", func(t *testing.T) {
		rec := get(t, s, "/presets/CONTACT/artifacts/page")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "src/app/crm/contacts/page.tsx", rec.Header().Get("X-Artifact-Path"))
		assert.Contains(t, rec.Body.String(), "HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1")
	})

	t.Run("unknown feature is 404", func(t *testing.T) {
		rec := get(t, s, "/presets/CONTACT/artifacts/graphql")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "FEATURE_NOT_FOUND", decode[map[string]string](t, rec)["code"])
	})

	t.Run("unknown entity type is 404", func(t *testing.T) {
		for _, path := range []string{"/presets/NONEXISTENT_ENTITY", "/presets/NONEXISTENT_ENTITY/artifacts"} {
			rec := get(t, s, path)
			assert.Equal(t, http.StatusNotFound, rec.Code, path)
			assert.Equal(t, "ENTITY_TYPE_NOT_FOUND", decode[map[string]string](t, rec)["code"])
		}
	})

	t.Run("history is 404 without a ledger", func(t *testing.T) {
		rec := get(t, s, "/history")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServerHistory(t *testing.T) {
	t.Run("lists runs with the requested filter", func(t *testing.T) {
		h := &stubHistory{runs: []ledger.Run{{ID: "r1", Entity: "CONTACT"}}}
		s := newServer(t, h)
		rec := get(t, s, "/history?entity=contact&limit=5")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ledger.Filter{Entity: "CONTACT", Limit: 5}, h.got)
		runs := decode[[]ledger.Run](t, rec)
		require.Len(t, runs, 1)
		assert.Equal(t, "r1", runs[0].ID)
	})

	t.Run("an empty history is an empty array", func(t *testing.T) {
		s := newServer(t, &stubHistory{})
		rec := get(t, s, "/history")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		s := newServer(t, &stubHistory{})
		rec := get(t, s, "/history?limit=-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ledger failures are 500", func(t *testing.T) {
		s := newServer(t, &stubHistory{err: errors.New("disk gone")})
		rec := get(t, s, "/history")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := newServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-done)
}
