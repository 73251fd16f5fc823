package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cfdilens/cfdilens/internal/logger"
	"github.com/cfdilens/cfdilens/internal/model"
)

// ResolvePath builds the absolute dataset path under root. An empty root means
// the process working directory, not the location of the binary or sources.
func ResolvePath(root, dataDir, fileName string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(filepath.Join(root, dataDir, fileName))
	if err != nil {
		return "", fmt.Errorf("resolving dataset path: %w", err)
	}
	return abs, nil
}

// Loader reads and normalizes the dataset at a fixed path, memoized per snapshot.
type Loader struct {
	path     string
	registry *Registry
	cache    *Cache
}

// NewLoader creates a Loader. A nil registry means DefaultRegistry; a nil
// cache means a private one.
func NewLoader(path string, registry *Registry, cache *Cache) *Loader {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if cache == nil {
		cache = NewCache()
	}
	return &Loader{path: path, registry: registry, cache: cache}
}

// Path returns the absolute path the loader reads.
func (l *Loader) Path() string { return l.path }

// Load returns the dataset for the current content of the source. It fails
// with *SourceNotFoundError when the file does not exist, and drops any cached
// snapshot of it.
func (l *Loader) Load(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.cache.Invalidate()
		return nil, &SourceNotFoundError{Path: l.path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", l.path, err)
	}

	fp := Fingerprint(l.path, data)
	if ds, ok := l.cache.Get(fp); ok {
		log.Debug().Str("path", l.path).Str("fingerprint", fp[:12]).Msg("dataset cache hit")
		return ds, nil
	}

	rd := l.registry.ForPath(l.path)
	if rd == nil {
		return nil, fmt.Errorf("no reader for %s (extension %q)", l.path, filepath.Ext(l.path))
	}

	tbl, err := rd.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.path, err)
	}

	ds, err := Normalize(tbl)
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", l.path, err)
	}
	ds.Source = l.path
	ds.Fingerprint = fp
	l.cache.Put(fp, ds)

	ev := log.Info().
		Str("path", l.path).
		Str("format", rd.Format()).
		Int("rows_read", ds.Stats.RowsRead).
		Int("rows_kept", ds.Len()).
		Int("rows_dropped", ds.Stats.RowsDropped)
	if len(ds.Stats.Defaulted) > 0 {
		dict := logger.Counts(ds.Stats.Defaulted)
		ev = ev.Dict("defaulted", dict)
	}
	ev.Msg("dataset loaded")

	return ds, nil
}
