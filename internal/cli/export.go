package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/manifest"
	"github.com/driftpro/logoexport/pkg/raster"
)

// exportCommand creates the export command, which rasterizes every PNG.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		only        []string
		concurrency int
		noCache     bool
		binary      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Rasterize every PNG in the manifest with rsvg-convert",
		Long: `Render every size in the manifest from its SVG source using rsvg-convert
(librsvg), writing each PNG to <out>/<platform>/<filename>.

Conversions run in parallel. Results are cached by source content and size,
so unchanged logos are not re-rendered.`,
		Example: `  # Render everything
  logoexport export

  # Only the web and print assets, one conversion at a time
  logoexport export --only web,print -j 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if cmd.Flags().Changed("no-cache") {
				cfg.NoCache = noCache
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			platforms, err := parsePlatforms(only)
			if err != nil {
				return err
			}

			m, err := loadManifest(cfg)
			if err != nil {
				return err
			}

			rsvg := raster.RSVG{Binary: binary}
			if err := rsvg.Available(); err != nil {
				return err
			}

			cache, err := newCache(cfg.NoCache)
			if err != nil {
				return err
			}
			defer cache.Close()

			total := countFiles(m, platforms)
			logger.Debug("exporting", "files", total, "concurrency", cfg.Concurrency, "cache", !cfg.NoCache)

			prog := newProgress(logger)
			count := newCounter(ctx, "Rasterizing", total)
			count.start()

			res, err := raster.Export(ctx, m, raster.ExportOptions{
				BaseDir:     cfg.BaseDir,
				SourceDir:   cfg.SourceDir,
				Concurrency: cfg.Concurrency,
				Cache:       cache,
				Rasterizer:  rsvg,
				Only:        platforms,
				Progress: func(o raster.Output) {
					count.advance(o.Filename)
				},
			})
			if err != nil {
				if count.interrupted() {
					count.stop()
				} else {
					count.fail("Export failed")
				}
				return err
			}
			count.succeed("Rasterized %d files", len(res.Outputs))
			prog.done(fmt.Sprintf("Rasterized %d files", len(res.Outputs)))

			printRasterStats(len(res.Outputs), res.Cached())
			for _, o := range res.Outputs {
				logger.Debug("wrote", "path", o.Path, "size", sizeLabel(o.Width, o.Height), "bytes", o.Bytes, "cached", o.Cached)
			}

			printNewline()
			printNextStep("Check the checklist", "logoexport status")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "restrict to platforms: ios, android, web, print")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "parallel conversions (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the raster cache")
	cmd.Flags().StringVar(&binary, "rsvg", raster.DefaultBinary, "rsvg-convert executable")

	return cmd
}

// parsePlatforms validates --only values.
func parsePlatforms(names []string) ([]manifest.Platform, error) {
	var out []manifest.Platform
	for _, name := range names {
		p := manifest.Platform(name)
		if !p.Valid() {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "unknown platform %q (must be one of %v)", name, manifest.Platforms)
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func countFiles(m *manifest.Manifest, platforms []manifest.Platform) int {
	if len(platforms) == 0 {
		return m.Count()
	}
	n := 0
	for _, p := range platforms {
		for _, logo := range m.ForPlatform(p) {
			n += len(logo.Sizes)
		}
	}
	return n
}
