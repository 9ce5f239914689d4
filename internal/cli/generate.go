package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftpro/logoexport/internal/config"
	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/export"
	"github.com/driftpro/logoexport/pkg/observability"
)

// generateFlags holds flags shared by the root command and "generate".
type generateFlags struct {
	watch bool
	tools toolsFlag
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "regenerate whenever the manifest file changes (requires --manifest)")
	f.tools.register(cmd)
}

// toolsFlag is the --tools selection. status must rebuild the document with
// the same tools generate used, so both commands register it.
type toolsFlag []string

func (f *toolsFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar((*[]string)(f), "tools", nil, "converters shown in export commands: svgexport, inkscape, imagemagick (default all)")
}

// apply overrides cfg.Tools when --tools was given on cmd.
func (f toolsFlag) apply(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("tools") {
		return nil
	}
	cfg.Tools = f
	return cfg.Validate()
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create the export directories and EXPORT_INSTRUCTIONS.md",
		Long: `Create the export directory tree (ios, android, web, print) and write
EXPORT_INSTRUCTIONS.md listing every PNG to produce, example commands for
svgexport, Inkscape and ImageMagick, per-platform checklists, design notes
and the support contact.

Existing files are kept; only EXPORT_INSTRUCTIONS.md is overwritten.`,
		Example: `  # Use the built-in manifest
  logoexport generate

  # Use a project manifest and a custom output directory
  logoexport generate -m logos.toml -o build/logos

  # Keep the document in sync while editing the manifest
  logoexport generate -m logos.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.settings(cmd)
	if err != nil {
		return err
	}
	if err := flags.tools.apply(cmd, &cfg); err != nil {
		return err
	}

	if !flags.watch {
		return generateOnce(ctx, cfg)
	}

	if cfg.Manifest == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "--watch requires --manifest")
	}
	if err := generateOnce(ctx, cfg); err != nil {
		printError("%s", apperr.UserMessage(err))
	}
	printNewline()
	printInfo("Watching %s for changes (Ctrl+C to stop)", cfg.Manifest)

	return watchFile(ctx, cfg.Manifest, defaultDebounce, func() error {
		logger.Debug("manifest changed", "path", cfg.Manifest)
		printNewline()
		if err := generateOnce(ctx, cfg); err != nil {
			printError("%s", apperr.UserMessage(err))
		}
		return nil
	})
}

// generateOnce loads the manifest and runs [export.Generate], printing a line
// after every step so the output up to a failure stays visible.
func generateOnce(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := loadManifest(cfg)
	if err != nil {
		return err
	}
	tools, err := cfg.ResolveTools()
	if err != nil {
		return err
	}

	printTitle("🎨 %s Logo Export", m.Brand)
	printInfo("Exporting logos to %s", cfg.BaseDir)

	res, err := export.Generate(ctx, m, export.Options{
		BaseDir:   cfg.BaseDir,
		SourceDir: cfg.SourceDir,
		Tools:     tools,
		Hooks:     &printHooks{next: observability.Export()},
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated instructions for %d files", res.FileCount))

	printNewline()
	printSuccess("Export instructions created")
	printKeyValue("Output", res.BaseDir)
	printKeyValue("Files", fmt.Sprintf("%d PNGs across %d platforms", res.FileCount, len(m.Platforms())))
	printKeyValue("Size", fmt.Sprintf("%d bytes", res.Bytes))

	printNewline()
	for _, t := range tools {
		if t.Install != "" {
			printNextStep("Install "+t.Name, t.Install)
		}
	}
	printNextStep("Run the export commands in", res.InstructionsPath)
	printNextStep("Or rasterize everything with rsvg-convert", "logoexport export")
	printNextStep("Track progress", "logoexport status")
	return nil
}

// printHooks prints a progress line for each generate step and forwards the
// event to next.
type printHooks struct {
	observability.NoopExportHooks
	next observability.ExportHooks
}

func (h *printHooks) OnDirEnsured(ctx context.Context, dir string) {
	printFile(strings.TrimSuffix(filepath.ToSlash(dir), "/") + "/")
	h.next.OnDirEnsured(ctx, dir)
}

func (h *printHooks) OnInstructionsWritten(ctx context.Context, path string, bytes int) {
	printFile(filepath.ToSlash(path))
	h.next.OnInstructionsWritten(ctx, path, bytes)
}
