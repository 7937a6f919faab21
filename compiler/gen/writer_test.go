package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagedWriter(t *testing.T) {
	ctx := context.Background()
	artifacts := []Artifact{
		{Feature: "page", Path: "src/app/crm/contacts/page.tsx", Content: []byte("'use client'\n")},
		{Feature: "readme", Path: "src/app/crm/contacts/README.md", Content: []byte("# Contacts\n")},
		{Feature: "api", Path: "src/app/api/v2/contacts/route.ts", Content: []byte("export {}\n")},
	}

	t.Run("stage then commit", func(t *testing.T) {
		root := t.TempDir()
		w := NewStagedWriter(root).WithWorkers(2)
		s, err := w.Stage(ctx, artifacts)
		require.NoError(t, err)

		files := s.Files()
		require.Len(t, files, 3)
		for final, staged := range files {
			assert.NoFileExists(t, filepath.Join(root, final))
			assert.FileExists(t, staged)
			assert.True(t, strings.HasPrefix(filepath.Base(staged), "."), staged)
		}
		assert.Contains(t, s.CreatedDirs(), filepath.Join(root, "src"))

		require.NoError(t, s.Commit())
		for _, a := range artifacts {
			data, err := os.ReadFile(filepath.Join(root, a.Path))
			require.NoError(t, err)
			assert.Equal(t, a.Content, data)
		}
		for _, staged := range files {
			assert.NoFileExists(t, staged)
		}
		m := w.Metrics()
		assert.Equal(t, 3, m.FilesGenerated)
		assert.EqualValues(t, len("'use client'\n")+len("# Contacts\n")+len("export {}\n"), m.TotalBytes)
	})

	t.Run("discard removes files and created directories", func(t *testing.T) {
		root := t.TempDir()
		s, err := NewStagedWriter(root).Stage(ctx, artifacts)
		require.NoError(t, err)
		require.NoError(t, s.Discard())

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("discard keeps existing directories and files", func(t *testing.T) {
		root := t.TempDir()
		existing := filepath.Join(root, "src/app/crm/contacts/page.tsx")
		require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
		require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

		s, err := NewStagedWriter(root).Stage(ctx, artifacts)
		require.NoError(t, err)
		assert.NotContains(t, s.CreatedDirs(), filepath.Join(root, "src/app/crm/contacts"))
		require.NoError(t, s.Discard())

		data, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
		assert.NoDirExists(t, filepath.Join(root, "src/app/api"))

		entries, err := os.ReadDir(filepath.Dir(existing))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("commit overwrites", func(t *testing.T) {
		root := t.TempDir()
		existing := filepath.Join(root, artifacts[0].Path)
		require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
		require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

		s, err := NewStagedWriter(root).Stage(ctx, artifacts[:1])
		require.NoError(t, err)
		require.NoError(t, s.Commit())
		data, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "'use client'\n", string(data))
	})

	t.Run("canceled context", func(t *testing.T) {
		root := t.TempDir()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewStagedWriter(root).Stage(cctx, artifacts)
		require.Error(t, err)
		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestMkdirAll(t *testing.T) {
	root := t.TempDir()
	created, err := mkdirAll(filepath.Join(root, "a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "a", "b", "c"),
	}, created)

	created, err = mkdirAll(filepath.Join(root, "a", "b"))
	require.NoError(t, err)
	assert.Empty(t, created)
}
