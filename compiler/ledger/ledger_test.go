package ledger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/heragen/compiler/gen"
	"github.com/syssam/heragen/compiler/ledger"
)

func result(key string, started time.Time) *gen.Result {
	return &gen.Result{
		Key:       key,
		Module:    "CRM",
		SmartCode: "HERA.CRM.CUSTOMER.ENTITY." + key + ".v1",
		Route:     "/crm/" + key,
		Industry:  "retail",
		Started:   started,
		Duration:  42 * time.Millisecond,
		Artifacts: []gen.ArtifactSummary{
			{Feature: "page", Path: "src/app/crm/x/page.tsx", Size: 120, SHA256: "abc"},
			{Feature: "api", Path: "src/app/api/v2/x/route.ts", Size: 60, SHA256: "def"},
		},
	}
}

func TestLedger(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("list on a never written ledger returns nothing and creates no file", func(t *testing.T) {
		root := t.TempDir()
		l := ledger.ForRoot(root)
		runs, err := l.List(ctx, ledger.Filter{})
		require.NoError(t, err)
		assert.Empty(t, runs)
		_, err = os.Stat(filepath.Join(root, ".heragen"))
		assert.True(t, os.IsNotExist(err))
		require.NoError(t, l.Close())
	})

	t.Run("records runs and lists them newest first", func(t *testing.T) {
		root := t.TempDir()
		l := ledger.ForRoot(root)
		t.Cleanup(func() { _ = l.Close() })

		require.NoError(t, l.Record(ctx, result("CONTACT", base)))
		require.NoError(t, l.Record(ctx, result("LEAD", base.Add(time.Minute))))
		assert.FileExists(t, filepath.Join(root, ledger.DefaultPath))

		runs, err := l.List(ctx, ledger.Filter{})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, "LEAD", runs[0].Entity)
		assert.Equal(t, "CONTACT", runs[1].Entity)

		got := runs[1]
		_, err = uuid.Parse(got.ID)
		assert.NoError(t, err)
		assert.Equal(t, "HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1", got.SmartCode)
		assert.Equal(t, "retail", got.Industry)
		assert.True(t, base.Equal(got.Started))
		assert.Equal(t, 42*time.Millisecond, got.Duration)
		assert.Equal(t, []ledger.Artifact{
			{Feature: "page", Path: "src/app/crm/x/page.tsx", Size: 120, SHA256: "abc"},
			{Feature: "api", Path: "src/app/api/v2/x/route.ts", Size: 60, SHA256: "def"},
		}, got.Artifacts)
	})

	t.Run("filters by entity and limits", func(t *testing.T) {
		l := ledger.Open(filepath.Join(t.TempDir(), "h.db"))
		t.Cleanup(func() { _ = l.Close() })
		for i := range 3 {
			require.NoError(t, l.Record(ctx, result("CONTACT", base.Add(time.Duration(i)*time.Second))))
		}
		require.NoError(t, l.Record(ctx, result("LEAD", base)))

		runs, err := l.List(ctx, ledger.Filter{Entity: "CONTACT", Limit: 2})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		for _, r := range runs {
			assert.Equal(t, "CONTACT", r.Entity)
		}
		assert.True(t, runs[0].Started.After(runs[1].Started))
	})

	t.Run("dry runs are not recorded", func(t *testing.T) {
		root := t.TempDir()
		l := ledger.ForRoot(root)
		res := result("CONTACT", base)
		res.DryRun = true
		require.NoError(t, l.Record(ctx, res))
		_, err := os.Stat(filepath.Join(root, ledger.DefaultPath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("a reopened ledger sees earlier runs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "h.db")
		l := ledger.Open(path)
		require.NoError(t, l.Record(ctx, result("CONTACT", base)))
		require.NoError(t, l.Close())

		l = ledger.Open(path)
		t.Cleanup(func() { _ = l.Close() })
		runs, err := l.List(ctx, ledger.Filter{})
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}

func TestLedgerRecordsGeneratorRuns(t *testing.T) {
	root := t.TempDir()
	l := ledger.ForRoot(root)
	t.Cleanup(func() { _ = l.Close() })

	cfg, err := gen.NewConfig(
		gen.WithRoot(root),
		gen.WithSkipGates("dependency-exists"),
		gen.WithIndustry("healthcare"),
		gen.WithLedger(l),
	)
	require.NoError(t, err)
	g, err := gen.New(cfg)
	require.NoError(t, err)

	res, err := g.Generate(context.Background(), "contact")
	require.NoError(t, err)

	runs, err := l.List(context.Background(), ledger.Filter{Entity: "CONTACT"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "healthcare", runs[0].Industry)
	assert.Len(t, runs[0].Artifacts, len(res.Artifacts))
	assert.Equal(t, res.Artifacts[0].SHA256, runs[0].Artifacts[0].SHA256)
}
