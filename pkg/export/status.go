package export

import (
	"bytes"
	"os"
	"path/filepath"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
	"github.com/driftpro/logoexport/pkg/manifest"
)

// FileStatus is one checklist entry matched against the disk.
type FileStatus struct {
	Section  string
	Filename string
	Platform manifest.Platform // empty when the manifest has no such file
	Path     string            // expected location; empty when Platform is
	Checked  bool              // ticked in the document
	Exists   bool              // present on disk
}

// StatusReport compares an instruction document with the export tree.
type StatusReport struct {
	InstructionsPath string
	Files            []FileStatus

	// Stale is set when the document on disk differs from what Generate
	// would write for the current manifest and options.
	Stale bool

	// Unlisted holds manifest filenames missing from the document's checklists.
	Unlisted []string
}

// Present returns the number of checklist files found on disk.
func (r *StatusReport) Present() int {
	n := 0
	for _, f := range r.Files {
		if f.Exists {
			n++
		}
	}
	return n
}

// Missing returns the checklist entries not found on disk.
func (r *StatusReport) Missing() []FileStatus {
	var out []FileStatus
	for _, f := range r.Files {
		if !f.Exists {
			out = append(out, f)
		}
	}
	return out
}

// Complete reports whether every listed file exists and the document is current.
func (r *StatusReport) Complete() bool {
	return !r.Stale && len(r.Unlisted) == 0 && r.Present() == len(r.Files)
}

// Status reads BaseDir/EXPORT_INSTRUCTIONS.md, parses its checklists, and
// checks which of the listed PNGs exist under BaseDir/<platform>/.
func Status(m *manifest.Manifest, opts Options) (*StatusReport, error) {
	if m == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "manifest is nil")
	}
	if opts.BaseDir == "" {
		opts.BaseDir = instructions.DefaultBaseDir
	}

	path := filepath.Join(opts.BaseDir, instructions.Filename)
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeFilesystem, err, "read %s", path).WithHint("Run logoexport generate first.")
	}

	items, err := instructions.ParseChecklist(doc)
	if err != nil {
		return nil, err
	}

	platformOf := make(map[string]manifest.Platform, m.Count())
	for _, f := range m.Files() {
		platformOf[f.Spec.Filename] = f.Platform
	}

	report := &StatusReport{InstructionsPath: path}
	listed := make(map[string]bool, len(items))
	for _, it := range items {
		listed[it.Filename] = true
		st := FileStatus{
			Section:  it.Section,
			Filename: it.Filename,
			Checked:  it.Checked,
		}
		if p, ok := platformOf[it.Filename]; ok {
			st.Platform = p
			st.Path = filepath.Join(opts.BaseDir, string(p), it.Filename)
			if info, err := os.Stat(st.Path); err == nil && info.Mode().IsRegular() {
				st.Exists = true
			}
		}
		report.Files = append(report.Files, st)
	}

	for _, f := range m.Files() {
		if !listed[f.Spec.Filename] {
			report.Unlisted = append(report.Unlisted, f.Spec.Filename)
		}
	}

	want, err := instructions.Render(m, instructions.Options{
		BaseDir:   opts.BaseDir,
		SourceDir: opts.SourceDir,
		Tools:     opts.Tools,
	})
	if err != nil {
		return nil, err
	}
	report.Stale = !bytes.Equal(want, doc)

	return report, nil
}
