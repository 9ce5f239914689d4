// Package instructions renders the EXPORT_INSTRUCTIONS.md document for a logo
// manifest and parses its checklist back.
//
// # Document
//
// [Render] walks the manifest in declaration order and emits, per platform:
//   - a fenced directory-tree diagram listing every output file and its purpose
//   - a fenced shell block with one invocation per external [Tool] for the
//     representative (first-declared) size of each logo
//   - a checklist with exactly one "- [ ] <filename>" line per size
//
// followed by the brand design notes and the support contact. Rendering is
// pure: the same manifest and [Options] always produce the same bytes.
//
// # Checklist
//
// [ParseChecklist] reads a rendered (and possibly hand-edited) document with
// goldmark and returns its task items, so callers can compare the document with
// the manifest and with the files on disk.
package instructions
