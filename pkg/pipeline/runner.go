package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/foldcut/pkg/cache"
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/observability"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// Runner executes the pipeline with an optional artifact cache.
//
// A Runner holds no per-run state; it may be shared by goroutines running
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer uses
// [cache.DefaultKeyer] and a nil logger discards all output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute validates opts, generates the pattern and writes every requested
// format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.New(), Artifacts: make(map[string]string)}
	logger := opts.Logger.With("run", result.RunID.String()[:8])

	rec, err := r.generate(ctx, &opts, result)
	if err != nil {
		return nil, err
	}
	logger.Info("generated pattern",
		"family", opts.Family,
		"hub", opts.Hub,
		"cells", result.Stats.Cells,
		"primitives", len(result.Primitives),
		"duration", result.Stats.GenerateTime)

	if err := r.write(ctx, &opts, rec.Primitives(), result, logger); err != nil {
		return nil, err
	}
	logger.Info("wrote artifacts",
		"formats", opts.Formats,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.WriteTime)

	return result, nil
}

func (r *Runner) generate(ctx context.Context, opts *Options, result *Result) (*sink.Recorder, error) {
	hooks := observability.Pipeline()
	cells := opts.Cells()
	hooks.OnGenerateStart(ctx, opts.Family, cells)

	start := time.Now()
	rec := sink.NewRecorder()
	err := Generate(opts, rec)
	result.Stats.GenerateTime = time.Since(start)
	hooks.OnGenerateComplete(ctx, opts.Family, rec.Len(), result.Stats.GenerateTime, err)
	if err != nil {
		return nil, err
	}

	result.Primitives = rec.Primitives()
	result.Flushes = rec.Flushes()
	result.Stats.Cells = cells
	result.Stats.Lines, result.Stats.Polylines = sink.Count(result.Primitives)
	result.Stats.Bounds = sink.Bounds(result.Primitives)
	return rec, nil
}

func (r *Runner) write(ctx context.Context, opts *Options, prims []sink.Primitive, result *Result, logger *log.Logger) error {
	hooks := observability.Pipeline()
	hooks.OnWriteStart(ctx, opts.Formats)
	start := time.Now()

	err := func() error {
		if dir := filepath.Dir(opts.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
			}
		}
		patternKey := r.Keyer.PatternKey(opts.KeyOpts())
		for _, format := range opts.Formats {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := opts.Path(format)
			hit, err := r.writeFormat(ctx, patternKey, format, path, prims)
			if err != nil {
				return err
			}
			if hit {
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			}
			result.Artifacts[format] = path
			logger.Debug("wrote artifact", "format", format, "path", path, "cached", hit)
		}
		return nil
	}()

	result.Stats.WriteTime = time.Since(start)
	hooks.OnWriteComplete(ctx, opts.Formats, result.Stats.WriteTime, err)
	return err
}

// writeFormat persists one artifact, from the cache when possible. It
// reports whether the cache served it.
func (r *Runner) writeFormat(ctx context.Context, patternKey, format, path string, prims []sink.Primitive) (bool, error) {
	key := r.Keyer.ArtifactKey(patternKey, format)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return false, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		return true, nil
	}
	observability.Cache().OnCacheMiss(ctx, format)

	enc, err := sink.EncoderFor(format)
	if err != nil {
		return false, err
	}
	f := sink.NewFile(path, enc)
	f.AppendAll(prims)
	if err := f.Flush(); err != nil {
		return false, err
	}

	if _, ok := r.Cache.(cache.NullCache); ok {
		return false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeIO, err, "read back %s", path)
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "err", err)
		return false, nil
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
	return false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
