package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
)

// showCommand creates the show command, which renders the instruction
// document in the terminal.
func (c *CLI) showCommand() *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render EXPORT_INSTRUCTIONS.md in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.settings(cmd)
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.BaseDir, instructions.Filename)
			doc, err := os.ReadFile(path)
			if err != nil {
				return apperr.Wrap(apperr.ErrCodeFilesystem, err, "read %s", path).WithHint("Run logoexport generate first.")
			}

			if raw {
				_, err := stdout.Write(doc)
				return err
			}

			out, err := renderMarkdown(doc, width)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "word-wrap width")
	return cmd
}

// renderMarkdown formats doc for the terminal, picking a dark or light style
// from the terminal background.
func renderMarkdown(doc []byte, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeInternal, err, "create markdown renderer")
	}
	out, err := renderer.RenderBytes(doc)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeInternal, err, "render markdown")
	}
	return string(out), nil
}
