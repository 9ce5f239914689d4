// Package cli implements the logoexport command-line interface.
//
// The root command behaves like "generate": it ensures the export directory
// tree exists and writes EXPORT_INSTRUCTIONS.md. Further commands rasterize
// the PNGs with rsvg-convert (export), compare the checklist against the disk
// (status), render the document in the terminal (show), and inspect
// manifests and the artifact cache.
//
// # Commands
//
//   - generate: Write the export tree and instruction document (default)
//   - export: Rasterize every PNG with rsvg-convert
//   - status: Report which checklist files exist on disk
//   - show: Render EXPORT_INSTRUCTIONS.md in the terminal
//   - manifest: Print or validate a manifest
//   - cache: Manage the raster cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; library events arrive through the
// observability hooks registered by [CLI.RootCommand].
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/driftpro/logoexport/internal/config"
	"github.com/driftpro/logoexport/pkg/buildinfo"
	"github.com/driftpro/logoexport/pkg/cache"
	"github.com/driftpro/logoexport/pkg/manifest"
	"github.com/driftpro/logoexport/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "logoexport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Getenv and Getwd are swapped out in tests.
	Getenv func(string) string
	Getwd  func() (string, error)

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	manifest  string
	baseDir   string
	sourceDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Getenv: os.Getenv,
		Getwd:  os.Getwd,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	gen := &generateFlags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "logoexport prepares platform logo assets",
		Long: `logoexport reads a logo manifest, creates the export directory tree
(ios, android, web, print) and writes EXPORT_INSTRUCTIONS.md with
per-platform export commands and checklists.

Running logoexport without a subcommand is the same as "logoexport generate".`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := &logHooks{logger: c.Logger}
			observability.SetExportHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, gen)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.manifest, "manifest", "m", "", "manifest file (.toml, .yaml, .yml); defaults to the built-in manifest")
	pf.StringVarP(&c.flags.baseDir, "out", "o", "", "export directory (default \"exported-logos\")")
	pf.StringVar(&c.flags.sourceDir, "source", "", "directory holding the SVG sources (default \"public\")")

	gen.register(root)

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.statusCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.manifestCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	registerFlagCompletions(root)
	return root
}

// =============================================================================
// Settings
// =============================================================================

// settings resolves config file and environment values, then applies any
// persistent flags the user set explicitly.
func (c *CLI) settings(cmd *cobra.Command) (config.Config, error) {
	wd, err := c.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(wd, c.Getenv)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Manifest = c.flags.manifest
	}
	if flags.Changed("out") {
		cfg.BaseDir = c.flags.baseDir
	}
	if flags.Changed("source") {
		cfg.SourceDir = c.flags.sourceDir
	}
	return cfg, cfg.Validate()
}

// loadManifest returns the manifest named by cfg, or the built-in one.
// The result is always validated.
func loadManifest(cfg config.Config) (*manifest.Manifest, error) {
	m := manifest.Default()
	if cfg.Manifest != "" {
		var err error
		if m, err = manifest.Load(cfg.Manifest); err != nil {
			return nil, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/logoexport/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
