package gen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// StagedWriter writes artifacts next to their final location and moves
// them into place only when Commit is called.
type StagedWriter struct {
	root    string
	workers int

	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks what a writer has committed.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewStagedWriter creates a writer rooted at the project directory root.
func NewStagedWriter(root string) *StagedWriter {
	return &StagedWriter{
		root:    root,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *StagedWriter) WithWorkers(n int) *StagedWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns a snapshot of the writer metrics.
func (w *StagedWriter) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

// Staging is a set of staged artifacts. Exactly one of Commit or Discard
// must be called.
type Staging struct {
	w       *StagedWriter
	files   []stagedFile
	created []string // directories created by Stage, parents first
}

type stagedFile struct {
	artifact Artifact
	final    string
	temp     string
}

// Stage writes every artifact to a temporary file in its destination
// directory. Directories that do not exist yet are created and recorded so
// that Discard can remove them again.
func (w *StagedWriter) Stage(ctx context.Context, artifacts []Artifact) (*Staging, error) {
	s := &Staging{w: w}
	dirs := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		s.files = append(s.files, stagedFile{artifact: a, final: filepath.Join(w.root, filepath.FromSlash(a.Path))})
		dirs = append(dirs, filepath.Dir(s.files[len(s.files)-1].final))
	}
	slices.Sort(dirs)
	for _, dir := range slices.Compact(dirs) {
		created, err := mkdirAll(dir)
		s.created = append(s.created, created...)
		if err != nil {
			s.removeDirs()
			return nil, NewGenerationError("stage", dir, "create directory", err)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i := range s.files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return s.stageFile(&s.files[i])
			}
		})
	}
	if err := eg.Wait(); err != nil {
		s.Discard()
		return nil, err
	}
	return s, nil
}

func (s *Staging) stageFile(f *stagedFile) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.final), "."+filepath.Base(f.final)+".heragen-*")
	if err != nil {
		return NewGenerationError("stage", f.artifact.Path, "create temp file", err)
	}
	f.temp = tmp.Name()
	if _, err := tmp.Write(f.artifact.Content); err != nil {
		tmp.Close()
		return NewGenerationError("stage", f.artifact.Path, "write", err)
	}
	if err := tmp.Close(); err != nil {
		return NewGenerationError("stage", f.artifact.Path, "close", err)
	}
	if err := os.Chmod(f.temp, 0o644); err != nil {
		return NewGenerationError("stage", f.artifact.Path, "chmod", err)
	}
	return nil
}

// Files maps the project relative path of every artifact to its staged file.
func (s *Staging) Files() map[string]string {
	files := make(map[string]string, len(s.files))
	for _, f := range s.files {
		files[f.artifact.Path] = f.temp
	}
	return files
}

// CreatedDirs returns the directories created while staging.
func (s *Staging) CreatedDirs() []string {
	return slices.Clone(s.created)
}

// Commit renames every staged file to its final path, replacing existing
// files.
func (s *Staging) Commit() error {
	var total int64
	for i, f := range s.files {
		if err := os.Rename(f.temp, f.final); err != nil {
			for _, rest := range s.files[i:] {
				os.Remove(rest.temp)
			}
			return NewGenerationError("commit", f.artifact.Path, "rename", err)
		}
		total += int64(len(f.artifact.Content))
	}
	s.w.mu.Lock()
	s.w.metrics.FilesGenerated += len(s.files)
	s.w.metrics.TotalBytes += total
	s.w.mu.Unlock()
	return nil
}

// Discard removes the staged files and the directories created for them.
func (s *Staging) Discard() error {
	var errs []error
	for _, f := range s.files {
		if f.temp == "" {
			continue
		}
		if err := os.Remove(f.temp); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	errs = append(errs, s.removeDirs())
	if err := errors.Join(errs...); err != nil {
		return NewGenerationError("discard", "", "", err)
	}
	return nil
}

// removeDirs removes created directories, deepest first. Directories that
// are no longer empty are left alone.
func (s *Staging) removeDirs() error {
	dirs := slices.Clone(s.created)
	slices.SortFunc(dirs, func(a, b string) int { return len(b) - len(a) })
	var errs []error
	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(d); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", d, err))
		}
	}
	return errors.Join(errs...)
}

// mkdirAll creates dir and any missing parents and returns the
// directories it created, parents first.
func mkdirAll(dir string) ([]string, error) {
	var missing []string
	for d := dir; ; d = filepath.Dir(d) {
		if _, err := os.Stat(d); err == nil {
			break
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		missing = append(missing, d)
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	slices.Reverse(missing)
	var created []string
	for _, d := range missing {
		err := os.Mkdir(d, 0o755)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return created, err
		}
		created = append(created, d)
	}
	return created, nil
}
