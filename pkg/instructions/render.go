package instructions

import (
	"bytes"
	_ "embed"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/manifest"
)

// Filename is the name of the generated document inside the export directory.
const Filename = "EXPORT_INSTRUCTIONS.md"

// Defaults used when Options fields are empty.
const (
	DefaultBaseDir   = "exported-logos"
	DefaultSourceDir = "public"
)

//go:embed templates/instructions.md.tmpl
var documentTemplate string

var tmpl = template.Must(template.New("instructions").
	Funcs(template.FuncMap{"join": strings.Join, "md": escapeMarkdown}).
	Parse(documentTemplate))

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// escapeMarkdown backslash-escapes the punctuation that would otherwise turn
// inline text into emphasis, code, links or HTML. ParseChecklist reverses it.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Options controls how paths and tools appear in the document.
type Options struct {
	BaseDir   string // export directory as shown in commands
	SourceDir string // directory holding the source SVGs
	Tools     []Tool // tools to show; nil means DefaultTools
}

func (o Options) withDefaults() Options {
	if o.BaseDir == "" {
		o.BaseDir = DefaultBaseDir
	}
	if o.SourceDir == "" {
		o.SourceDir = DefaultSourceDir
	}
	if len(o.Tools) == 0 {
		o.Tools = DefaultTools()
	}
	o.BaseDir = filepath.ToSlash(o.BaseDir)
	o.SourceDir = filepath.ToSlash(o.SourceDir)
	return o
}

type document struct {
	Brand        string
	SupportEmail string
	Design       manifest.Design
	HasDesign    bool
	Sections     []section
}

type section struct {
	Heading    string
	Intro      string
	Tree       string
	ToolBlocks []toolBlock
	Remaining  int
	Checklist  string
	Files      []string
}

type toolBlock struct {
	Title    string
	Install  string
	Commands []string
}

// Render produces the instruction document for m. m is expected to have passed
// [manifest.Manifest.Validate].
func Render(m *manifest.Manifest, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	doc := document{
		Brand:        m.Brand,
		SupportEmail: m.SupportEmail,
		Design:       m.Design,
		HasDesign:    len(m.Design.Colors) > 0 || len(m.Design.Fonts) > 0 || m.Design.Description != "",
	}
	for _, p := range m.Platforms() {
		doc.Sections = append(doc.Sections, buildSection(p, m.ForPlatform(p), opts))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "render %s", Filename)
	}
	return buf.Bytes(), nil
}

func buildSection(p manifest.Platform, logos []manifest.LogoDefinition, opts Options) section {
	info := p.Info()
	sec := section{
		Heading:   strings.TrimSpace(info.Icon + " " + info.Title),
		Intro:     info.Intro,
		Checklist: info.Checklist,
	}

	var specs []manifest.SizeSpec
	var shown []manifest.LogoDefinition
	for _, logo := range logos {
		if len(logo.Sizes) == 0 {
			continue
		}
		specs = append(specs, logo.Sizes...)
		shown = append(shown, logo)
	}
	for _, s := range specs {
		sec.Files = append(sec.Files, s.Filename)
	}
	sec.Tree = renderTree(info.TreeRoot, specs)
	sec.Remaining = len(specs) - len(shown)

	for _, tool := range opts.Tools {
		block := toolBlock{Title: tool.Title, Install: tool.Install}
		for _, logo := range shown {
			rep := logo.Sizes[0]
			w, h := rep.Dimensions()
			src := logo.SourcePath(opts.SourceDir)
			dst := OutputPath(opts.BaseDir, p, rep.Filename)
			block.Commands = append(block.Commands, tool.Command(src, dst, w, h))
		}
		sec.ToolBlocks = append(sec.ToolBlocks, block)
	}
	return sec
}

// OutputPath returns the slash-separated path of an exported PNG as shown in
// the document: <baseDir>/<platform>/<filename>.
func OutputPath(baseDir string, p manifest.Platform, filename string) string {
	return path.Join(filepath.ToSlash(baseDir), string(p), filename)
}
