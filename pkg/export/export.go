// Package export prepares the export directory tree and writes the
// instruction document for a manifest.
//
// [Generate] is the whole operation: it ensures the base directory and one
// subdirectory per platform exist, renders the document with
// [instructions.Render], and writes it to BaseDir/EXPORT_INSTRUCTIONS.md.
// Existing files in the tree are left alone; only the instruction document is
// overwritten. Nothing is rolled back on failure, so directories created before
// an error remain on disk.
package export

import (
	"context"
	"os"
	"path/filepath"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
	"github.com/driftpro/logoexport/pkg/manifest"
	"github.com/driftpro/logoexport/pkg/observability"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Options configures [Generate].
type Options struct {
	// BaseDir is the export root. Defaults to [instructions.DefaultBaseDir].
	BaseDir string

	// SourceDir is where the SVG sources live. It only affects the paths
	// printed in the export commands.
	SourceDir string

	// Tools selects which converters appear in the export commands.
	// Defaults to [instructions.DefaultTools].
	Tools []instructions.Tool

	// Hooks receives a call after each step. Defaults to [observability.Export].
	Hooks observability.ExportHooks
}

// Result describes what [Generate] produced.
type Result struct {
	BaseDir          string
	Dirs             []string
	InstructionsPath string
	FileCount        int
	Bytes            int
}

// Generate ensures the export tree exists and writes the instruction document.
//
// Any filesystem failure is returned as an error with code
// [apperr.ErrCodeFilesystem] wrapping the underlying *fs.PathError.
func Generate(ctx context.Context, m *manifest.Manifest, opts Options) (*Result, error) {
	if m == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "manifest is nil")
	}
	if opts.BaseDir == "" {
		opts.BaseDir = instructions.DefaultBaseDir
	}
	hooks := opts.Hooks
	if hooks == nil {
		hooks = observability.Export()
	}

	res := &Result{
		BaseDir:   opts.BaseDir,
		FileCount: m.Count(),
	}

	if err := os.MkdirAll(opts.BaseDir, dirPerm); err != nil {
		return nil, apperr.Filesystem(err, "create export directory %s", opts.BaseDir)
	}
	hooks.OnDirEnsured(ctx, opts.BaseDir)

	for _, p := range manifest.Platforms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dir := filepath.Join(opts.BaseDir, string(p))
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, apperr.Filesystem(err, "create platform directory %s", dir)
		}
		res.Dirs = append(res.Dirs, dir)
		hooks.OnDirEnsured(ctx, dir)
	}

	doc, err := instructions.Render(m, instructions.Options{
		BaseDir:   opts.BaseDir,
		SourceDir: opts.SourceDir,
		Tools:     opts.Tools,
	})
	if err != nil {
		return nil, err
	}

	path := filepath.Join(opts.BaseDir, instructions.Filename)
	if err := os.WriteFile(path, doc, filePerm); err != nil {
		return nil, apperr.Filesystem(err, "write %s", path)
	}
	res.InstructionsPath = path
	res.Bytes = len(doc)
	hooks.OnInstructionsWritten(ctx, path, len(doc))

	return res, nil
}
