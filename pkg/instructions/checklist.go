package instructions

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// Item is one task-list entry of an instruction document.
type Item struct {
	Section  string // text of the enclosing level-2 heading
	Filename string // item text, i.e. the expected output filename
	Checked  bool
}

// MaxDocumentSize limits the input accepted by ParseChecklist (1MB).
const MaxDocumentSize = 1 << 20

var checklistParser = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// ParseChecklist returns every task item of doc in document order.
func ParseChecklist(doc []byte) ([]Item, error) {
	if len(doc) > MaxDocumentSize {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "document exceeds %d bytes", MaxDocumentSize)
	}

	root := checklistParser.Parser().Parse(text.NewReader(doc))

	var items []Item
	section := ""
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				section = inlineText(node, doc)
			}
			return ast.WalkSkipChildren, nil
		case *extast.TaskCheckBox:
			items = append(items, Item{
				Section:  section,
				Filename: inlineText(node.Parent(), doc),
				Checked:  node.IsChecked,
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "walk checklist")
	}
	return items, nil
}

// inlineText concatenates the text segments below n and drops backslash
// escapes, so an escaped filename reads back as written.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(string(util.UnescapePunctuations(buf.Bytes())))
}
