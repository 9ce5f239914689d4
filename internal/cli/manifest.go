package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftpro/logoexport/internal/config"
	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/manifest"
)

// manifestCommand creates the manifest command group.
func (c *CLI) manifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Inspect, validate, or scaffold logo manifests",
	}

	cmd.AddCommand(c.manifestShowCommand())
	cmd.AddCommand(c.manifestValidateCommand())
	cmd.AddCommand(c.manifestInitCommand())

	return cmd
}

// manifestShowCommand creates the "manifest show" subcommand.
func (c *CLI) manifestShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := manifest.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := c.settings(cmd)
			if err != nil {
				return err
			}
			m, err := loadManifest(cfg)
			if err != nil {
				return err
			}
			data, err := manifest.Encode(m, f)
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml, yaml")
	return cmd
}

// manifestValidateCommand creates the "manifest validate" subcommand.
func (c *CLI) manifestValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a manifest file (or the effective manifest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.settings(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Manifest = args[0]
			}

			m, err := loadManifest(cfg)
			if err != nil {
				var e *apperr.Error
				if errors.As(err, &e) && e.Code == apperr.ErrCodeInvalidManifest {
					printError("%s", e.Message)
					for _, problem := range problems(e.Cause) {
						printDetail("%s", problem)
					}
					return apperr.New(apperr.ErrCodeInvalidManifest, "manifest is invalid")
				}
				return err
			}

			name := cfg.Manifest
			if name == "" {
				name = "built-in manifest"
			}
			printSuccess("%s is valid", name)
			printDetail("%d logos, %d files, platforms %v", len(m.Logos), m.Count(), m.Platforms())
			return nil
		},
	}
}

// manifestInitCommand creates the "manifest init" subcommand.
func (c *CLI) manifestInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the built-in manifest to a file for editing",
		Long: `Write the built-in manifest to a file (default logos.toml). The format
follows the extension: .toml, .yaml or .yml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "logos.toml"
			if len(args) == 1 {
				path = args[0]
			}
			f, err := manifest.FormatFromPath(path)
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return apperr.New(apperr.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return apperr.Filesystem(err, "stat %s", path)
				}
			}

			data, err := manifest.Encode(manifest.Default(), f)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return apperr.Filesystem(err, "write %s", path)
			}

			printSuccess("Wrote %s", path)
			printNextStep("Use it", fmt.Sprintf("logoexport generate --manifest %s", path))
			printDetail("or set manifest = %q in %s", path, config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// problems unpacks an errors.Join result into its individual messages.
func problems(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
