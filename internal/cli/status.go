package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/export"
)

// statusCommand creates the status command.
func (c *CLI) statusCommand() *cobra.Command {
	var (
		strict bool
		tools  toolsFlag
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which checklist files exist on disk",
		Long: `Read EXPORT_INSTRUCTIONS.md, parse its checklists, and report per section
which PNGs are present in the export tree and which are still missing. Also
reports when the document no longer matches the current manifest. Pass the
same --tools given to generate so the comparison uses the same commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.settings(cmd)
			if err != nil {
				return err
			}
			if err := tools.apply(cmd, &cfg); err != nil {
				return err
			}
			m, err := loadManifest(cfg)
			if err != nil {
				return err
			}
			resolved, err := cfg.ResolveTools()
			if err != nil {
				return err
			}

			report, err := export.Status(m, export.Options{
				BaseDir:   cfg.BaseDir,
				SourceDir: cfg.SourceDir,
				Tools:     resolved,
			})
			if err != nil {
				return err
			}

			printReport(report)

			if strict && !report.Complete() {
				return incompleteError(report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error unless every file exists and the document is current")
	tools.register(cmd)
	return cmd
}

// incompleteError names every reason r is not complete.
func incompleteError(r *export.StatusReport) error {
	var reasons []string
	if n := len(r.Missing()); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d of %d files missing", n, len(r.Files)))
	}
	if r.Stale {
		reasons = append(reasons, "document is out of date with the manifest")
	}
	if n := len(r.Unlisted); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d manifest file(s) not in the document", n))
	}
	err := apperr.New(apperr.ErrCodeInvalidInput, "export incomplete: %s", strings.Join(reasons, ", "))
	if r.Stale || len(r.Unlisted) > 0 {
		return err.WithHint("Run logoexport generate with the same --tools to refresh the document.")
	}
	return err
}

func printReport(r *export.StatusReport) {
	printTitle("%s", r.InstructionsPath)

	section := ""
	present, total := 0, 0
	flush := func() {
		if section != "" {
			printDetail("%d/%d present", present, total)
		}
	}
	for _, f := range r.Files {
		if f.Section != section {
			flush()
			section = f.Section
			present, total = 0, 0
			printNewline()
			printSection(section)
		}
		total++
		switch {
		case f.Exists:
			present++
			printSuccess("%s", f.Filename)
		case f.Platform == "":
			printWarning("%s (not in manifest)", f.Filename)
		default:
			printError("%s", f.Filename)
		}
	}
	flush()

	printNewline()
	printKeyValue("Present", fmt.Sprintf("%d/%d", r.Present(), len(r.Files)))
	if len(r.Unlisted) > 0 {
		printWarning("%d manifest file(s) not in the document: %v", len(r.Unlisted), r.Unlisted)
	}
	if r.Stale {
		printWarning("Document is out of date with the manifest")
		printNextStep("Regenerate", "logoexport generate")
	} else if len(r.Missing()) > 0 {
		printNextStep("Render the missing files", "logoexport export")
	}
}
