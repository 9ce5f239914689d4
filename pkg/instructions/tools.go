package instructions

import (
	"fmt"
	"strings"
)

// Tool is an external SVG-to-PNG converter the document shows example
// invocations for. logoexport never runs these tools itself.
type Tool struct {
	Name    string // short identifier, e.g. "svgexport"
	Title   string // heading shown above the tool's commands
	Install string // optional install hint
	command func(src, dst string, width, height int) string
}

// Command returns the shell invocation converting src to a width x height PNG
// at dst. Paths are shell-quoted when needed.
func (t Tool) Command(src, dst string, width, height int) string {
	return t.command(shellQuote(src), shellQuote(dst), width, height)
}

// Supported tools.
var (
	SVGExport = Tool{
		Name:    "svgexport",
		Title:   "svgexport (recommended)",
		Install: "npm install -g svgexport",
		command: func(src, dst string, w, h int) string {
			return fmt.Sprintf("svgexport %s %s %d:%d", src, dst, w, h)
		},
	}

	Inkscape = Tool{
		Name:  "inkscape",
		Title: "Inkscape",
		command: func(src, dst string, w, h int) string {
			return fmt.Sprintf("inkscape %s --export-filename=%s --export-width=%d --export-height=%d", src, dst, w, h)
		},
	}

	ImageMagick = Tool{
		Name:  "imagemagick",
		Title: "ImageMagick",
		command: func(src, dst string, w, h int) string {
			return fmt.Sprintf("convert %s -resize %dx%d %s", src, w, h, dst)
		},
	}
)

// DefaultTools returns the tools shown when no subset is requested.
func DefaultTools() []Tool {
	return []Tool{SVGExport, Inkscape, ImageMagick}
}

// LookupTool finds a supported tool by name (case-insensitive).
func LookupTool(name string) (Tool, bool) {
	for _, t := range DefaultTools() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Tool{}, false
}

// shellQuote single-quotes s if it contains characters the shell would
// interpret.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`!*?[](){}<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
