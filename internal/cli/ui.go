package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stdout receives all user-facing output. Tests replace it with a buffer.
var stdout io.Writer = os.Stdout

// Palette. ANSI 256 codes so the output reads the same on light and dark
// terminals.
var (
	colorAccent = lipgloss.Color("36")  // teal: titles, counters, spinner
	colorOK     = lipgloss.Color("35")  // green: written or present files
	colorWarn   = lipgloss.Color("220") // amber: stale or unlisted files
	colorFail   = lipgloss.Color("167") // red: missing files, failures
	colorShell  = lipgloss.Color("75")  // blue: commands to run next
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	// StyleTitle renders command headings such as "🎨 Acme Logo Export".
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorMuted)

	// StyleValue renders paths, sizes and other values.
	StyleValue = lipgloss.NewStyle().Foreground(colorText)

	// StyleWarning renders warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)

	styleSection  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	styleLabel    = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleCommand  = lipgloss.NewStyle().Foreground(colorShell)
	styleSpinner  = lipgloss.NewStyle().Foreground(colorAccent)
	styleRendered = lipgloss.NewStyle().Foreground(colorLabel)
	styleCached   = lipgloss.NewStyle().Foreground(colorOK)
)

// mark is a one-character status prefix.
type mark struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = mark{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	markFail = mark{"✗", lipgloss.NewStyle().Foreground(colorFail)}
	markWarn = mark{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	markInfo = mark{"›", lipgloss.NewStyle().Foreground(colorLabel)}
)

func (m mark) println(text string) {
	fmt.Fprintln(stdout, m.style.Render(m.glyph)+" "+text)
}

func printTitle(format string, args ...any) {
	fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf(format, args...)))
}

// printSection prints a checklist heading in the status report.
func printSection(title string) {
	fmt.Fprintln(stdout, styleSection.Render(title))
}

func printSuccess(format string, args ...any) { markOK.println(fmt.Sprintf(format, args...)) }

func printError(format string, args ...any) { markFail.println(fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	markWarn.println(StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) { markInfo.println(fmt.Sprintf(format, args...)) }

// printDetail prints an indented, muted line under the previous message.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a path that was written.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// printRasterStats summarizes an export run, e.g. "40 files · 12 rendered · 28 cached".
func printRasterStats(total, cached int) {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d files", total)),
		styleRendered.Render(fmt.Sprintf("%d rendered", total-cached)),
	}
	if cached > 0 {
		parts = append(parts, styleCached.Render(fmt.Sprintf("%d cached", cached)))
	}
	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a command to run next.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() { fmt.Fprintln(stdout) }

// sizeLabel formats pixel dimensions as WxH.
func sizeLabel(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
