package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftpro/logoexport/pkg/cache"
	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// cacheCommand groups the raster cache maintenance subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the raster cache",
		Long: `PNGs rendered by "logoexport export" are cached by SVG content and
size under $XDG_CACHE_HOME/logoexport (or ~/.cache/logoexport).`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				dir, err := resolveCacheDir()
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, dir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show how many PNGs are cached and their size",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return cacheInfo() },
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every cached PNG",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return cacheClear() },
		},
	)
	return cmd
}

func resolveCacheDir() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeFilesystem, err, "locate cache directory").
			WithHint("Set XDG_CACHE_HOME or use --no-cache.")
	}
	return dir, nil
}

// openExistingCache opens the cache without creating it. fc is nil when the
// directory does not exist yet.
func openExistingCache() (fc *cache.FileCache, dir string, err error) {
	if dir, err = resolveCacheDir(); err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, dir, nil
	}
	fc, err = cache.NewFileCache(dir)
	return fc, dir, err
}

func cacheInfo() error {
	fc, dir, err := openExistingCache()
	if err != nil {
		return err
	}
	var entries int
	var size int64
	if fc != nil {
		if entries, size, err = fc.Stats(); err != nil {
			return err
		}
	}

	printKeyValue("Directory", dir)
	printKeyValue("Entries", fmt.Sprintf("%d", entries))
	printKeyValue("Size", formatBytes(size))
	return nil
}

func cacheClear() error {
	fc, dir, err := openExistingCache()
	if err != nil {
		return err
	}
	if fc == nil {
		printInfo("Cache is empty")
		return nil
	}
	entries, size, err := fc.Stats()
	if err != nil {
		return err
	}
	if err := fc.Clear(); err != nil {
		return err
	}

	printSuccess("Cleared %d cached PNGs (%s)", entries, formatBytes(size))
	printDetail("Directory: %s", dir)
	return nil
}

// formatBytes renders n in B, KB or MB.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
