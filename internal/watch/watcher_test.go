package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcher(t *testing.T) {
	t.Run("coalesces a burst of writes into one change", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, ".heragen.yaml")
		require.NoError(t, os.WriteFile(file, []byte("root: .\n"), 0o644))

		changed := make(chan string, 8)
		w, err := New([]string{file}, 50*time.Millisecond, func(_ context.Context, path string) {
			changed <- path
		}, nil)
		require.NoError(t, err)
		require.NoError(t, w.Start(context.Background()))
		defer w.Stop()

		for i := range 3 {
			require.NoError(t, os.WriteFile(file, []byte("workers: "+string(rune('1'+i))+"\n"), 0o644))
		}

		select {
		case path := <-changed:
			abs, _ := filepath.Abs(file)
			assert.Equal(t, abs, path)
		case <-time.After(5 * time.Second):
			t.Fatal("no change reported")
		}
		select {
		case <-changed:
			t.Fatal("burst reported more than once")
		case <-time.After(200 * time.Millisecond):
		}
		assert.Equal(t, 1, w.Stats().Triggers)
		assert.GreaterOrEqual(t, w.Stats().Events, 1)
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "presets.yaml")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		changed := make(chan string, 1)
		w, err := New([]string{file}, 10*time.Millisecond, func(_ context.Context, path string) {
			changed <- path
		}, nil)
		require.NoError(t, err)
		require.NoError(t, w.Start(context.Background()))
		defer w.Stop()

		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
		select {
		case <-changed:
			t.Fatal("unrelated file triggered a change")
		case <-time.After(150 * time.Millisecond):
		}
		assert.Zero(t, w.Stats().Events)
	})

	t.Run("stop is idempotent and cancellation ends the loop", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		w, err := New([]string{filepath.Join(dir, "x.yaml")}, time.Millisecond, func(context.Context, string) {}, nil)
		require.NoError(t, err)
		require.NoError(t, w.Start(ctx))
		require.NoError(t, w.Start(ctx))
		cancel()
		w.Stop()
		w.Stop()
	})

	t.Run("a missing directory fails to start", func(t *testing.T) {
		w, err := New([]string{filepath.Join(t.TempDir(), "nope", "x.yaml")}, time.Millisecond, func(context.Context, string) {}, nil)
		require.NoError(t, err)
		assert.Error(t, w.Start(context.Background()))
		w.Stop()
	})

	t.Run("requires files and a callback", func(t *testing.T) {
		_, err := New(nil, time.Millisecond, func(context.Context, string) {}, nil)
		assert.Error(t, err)
		_, err = New([]string{"x"}, time.Millisecond, nil, nil)
		assert.Error(t, err)
	})
}
