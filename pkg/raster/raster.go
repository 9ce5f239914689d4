// Package raster renders the PNG outputs of a manifest from their SVG sources.
//
// Rasterization is delegated to an external converter through the
// [Rasterizer] interface; [RSVG] runs rsvg-convert once per output and never
// decodes images in-process. [Export] fans the work out with bounded
// concurrency, consults a [cache.Cache] keyed by source bytes and
// dimensions, and writes each PNG to BaseDir/<platform>/<filename>.
package raster

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/driftpro/logoexport/pkg/cache"
	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
	"github.com/driftpro/logoexport/pkg/manifest"
	"github.com/driftpro/logoexport/pkg/observability"
)

// CacheTTL bounds how long a rendered PNG stays in the cache. Entries for
// edited sources are never looked up again and expire after this long.
const CacheTTL = 30 * 24 * time.Hour

// Rasterizer converts SVG bytes into a PNG of the given pixel dimensions.
type Rasterizer interface {
	Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error)
}

// ExportOptions configures [Export].
type ExportOptions struct {
	BaseDir     string              // export root; defaults to instructions.DefaultBaseDir
	SourceDir   string              // SVG directory; defaults to instructions.DefaultSourceDir
	Concurrency int                 // parallel conversions; <= 0 means runtime.GOMAXPROCS(0)
	Cache       cache.Cache         // nil disables caching
	Rasterizer  Rasterizer          // nil means RSVG{}
	Only        []manifest.Platform // restrict to these platforms; empty means all

	// Progress, if set, is called after each output is written. It may be
	// called from several goroutines at once.
	Progress func(Output)
}

// Output describes one written PNG.
type Output struct {
	Platform manifest.Platform
	Logo     string
	Filename string
	Path     string
	Width    int
	Height   int
	Bytes    int
	Cached   bool
}

// Result lists every output in manifest order.
type Result struct {
	Outputs []Output
}

// Cached returns how many outputs were served from the cache.
func (r *Result) Cached() int {
	n := 0
	for _, o := range r.Outputs {
		if o.Cached {
			n++
		}
	}
	return n
}

// Export rasterizes every selected SizeSpec of m.
//
// Each logo's SVG source is read once before any conversion starts, so a
// missing source fails the run without writing anything. The first conversion
// or write error cancels the remaining work.
func Export(ctx context.Context, m *manifest.Manifest, opts ExportOptions) (*Result, error) {
	if m == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "manifest is nil")
	}
	opts = opts.withDefaults()

	files := selectFiles(m, opts.Only)
	sources, err := readSources(files, opts.SourceDir)
	if err != nil {
		return nil, err
	}

	for _, p := range manifest.Platforms {
		dir := filepath.Join(opts.BaseDir, string(p))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperr.Filesystem(err, "create platform directory %s", dir)
		}
	}

	res := &Result{Outputs: make([]Output, len(files))}
	hooks := observability.Export()

	var progressMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, f := range files {
		g.Go(func() error {
			out, err := exportOne(gctx, f, sources[f.Logo.SourcePath(opts.SourceDir)], opts, hooks)
			if err != nil {
				return err
			}
			res.Outputs[i] = out
			if opts.Progress != nil {
				progressMu.Lock()
				opts.Progress(out)
				progressMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func exportOne(ctx context.Context, f manifest.File, svg []byte, opts ExportOptions, hooks observability.ExportHooks) (Output, error) {
	w, h := f.Spec.Dimensions()
	out := Output{
		Platform: f.Platform,
		Logo:     f.Logo.Name,
		Filename: f.Spec.Filename,
		Path:     filepath.Join(opts.BaseDir, string(f.Platform), f.Spec.Filename),
		Width:    w,
		Height:   h,
	}

	key := cache.RasterKey(svg, w, h)
	png, hit, err := opts.Cache.Get(ctx, key)
	if err != nil {
		// A broken cache only costs a conversion.
		hit = false
	}

	if !hit {
		start := time.Now()
		hooks.OnRasterStart(ctx, out.Filename, w, h)
		png, err = opts.Rasterizer.Rasterize(ctx, svg, w, h)
		hooks.OnRasterComplete(ctx, out.Filename, time.Since(start), err)
		if err != nil {
			return out, err
		}
		_ = opts.Cache.Set(ctx, key, png, CacheTTL)
	}

	if err := os.WriteFile(out.Path, png, 0o644); err != nil {
		return out, apperr.Filesystem(err, "write %s", out.Path)
	}
	out.Bytes = len(png)
	out.Cached = hit
	return out, nil
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.BaseDir == "" {
		o.BaseDir = instructions.DefaultBaseDir
	}
	if o.SourceDir == "" {
		o.SourceDir = instructions.DefaultSourceDir
	}
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.Rasterizer == nil {
		o.Rasterizer = RSVG{}
	}
	return o
}

func selectFiles(m *manifest.Manifest, only []manifest.Platform) []manifest.File {
	all := m.Files()
	if len(only) == 0 {
		return all
	}
	var files []manifest.File
	for _, f := range all {
		if slices.Contains(only, f.Platform) {
			files = append(files, f)
		}
	}
	return files
}

// readSources loads each distinct SVG source once, keyed by its path.
func readSources(files []manifest.File, sourceDir string) (map[string][]byte, error) {
	sources := make(map[string][]byte)
	for _, f := range files {
		path := f.Logo.SourcePath(sourceDir)
		if _, ok := sources[path]; ok {
			continue
		}
		data, err := os.ReadFile(filepath.FromSlash(path))
		if err != nil {
			return nil, apperr.Filesystem(err, "read source for logo %s", f.Logo.Name)
		}
		sources[path] = data
	}
	return sources, nil
}
