package instructions

import (
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/driftpro/logoexport/pkg/manifest"
)

// folderName normalizes a Subdir so "set" and "set/" name the same folder.
func folderName(subdir string) string {
	return strings.TrimRight(subdir, "/")
}

// buildTree groups specs by folder in first-seen order. Files without a
// Subdir sit at the root, interleaved with folders as declared.
func buildTree(root string, specs []manifest.SizeSpec) *tree.Tree {
	t := tree.Root(root)
	folders := make(map[string]*tree.Tree)
	for _, s := range specs {
		label := fileLabel(s)
		name := folderName(s.Subdir)
		if name == "" {
			t.Child(label)
			continue
		}
		folder, ok := folders[name]
		if !ok {
			folder = tree.Root(name + "/")
			folders[name] = folder
			t.Child(folder)
		}
		folder.Child(label)
	}
	return t
}

// renderTree draws a plain box-drawing directory diagram rooted at root.
func renderTree(root string, specs []manifest.SizeSpec) string {
	return buildTree(root, specs).String() + "\n"
}

func fileLabel(s manifest.SizeSpec) string {
	if s.Purpose == "" {
		return s.Filename
	}
	return s.Filename + " (" + s.Purpose + ")"
}
