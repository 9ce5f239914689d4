package instructions

import (
	"testing"

	"github.com/driftpro/logoexport/pkg/manifest"
)

func TestToolCommands(t *testing.T) {
	tests := []struct {
		tool Tool
		want string
	}{
		{SVGExport, "svgexport public/logo.svg out/web/logo-400.png 400:120"},
		{Inkscape, "inkscape public/logo.svg --export-filename=out/web/logo-400.png --export-width=400 --export-height=120"},
		{ImageMagick, "convert public/logo.svg -resize 400x120 out/web/logo-400.png"},
	}
	for _, tt := range tests {
		t.Run(tt.tool.Name, func(t *testing.T) {
			if got := tt.tool.Command("public/logo.svg", "out/web/logo-400.png", 400, 120); got != tt.want {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupTool(t *testing.T) {
	for _, name := range []string{"svgexport", "Inkscape", "IMAGEMAGICK"} {
		if _, ok := LookupTool(name); !ok {
			t.Errorf("LookupTool(%q) not found", name)
		}
	}
	if _, ok := LookupTool("gimp"); ok {
		t.Error("LookupTool(gimp) should not be found")
	}
	if got := len(DefaultTools()); got != 3 {
		t.Errorf("DefaultTools() = %d tools, want 3", got)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"exported-logos/ios/a.png", "exported-logos/ios/a.png"},
		{"my logos/a.png", "'my logos/a.png'"},
		{"it's.svg", `'it'\''s.svg'`},
		{"$HOME/a.svg", "'$HOME/a.svg'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := shellQuote(tt.in); got != tt.want {
			t.Errorf("shellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTree(t *testing.T) {
	specs := []manifest.SizeSpec{
		{Filename: "a-512.png", Purpose: "Play Store", Subdir: "play-store"},
		{Filename: "a-192.png", Subdir: "mipmap-xxxhdpi"},
		{Filename: "a-96.png", Subdir: "mipmap-xhdpi"},
		{Filename: "a-48.png", Subdir: "mipmap-xhdpi"},
		{Filename: "readme.png", Purpose: "Root file"},
	}
	want := "res/\n" +
		"├── play-store/\n" +
		"│   └── a-512.png (Play Store)\n" +
		"├── mipmap-xxxhdpi/\n" +
		"│   └── a-192.png\n" +
		"├── mipmap-xhdpi/\n" +
		"│   ├── a-96.png\n" +
		"│   └── a-48.png\n" +
		"└── readme.png (Root file)\n"

	if got := renderTree("res/", specs); got != want {
		t.Errorf("renderTree() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTreeLastFolder(t *testing.T) {
	specs := []manifest.SizeSpec{
		{Filename: "a.png"},
		{Filename: "b.png", Subdir: "set/"},
		{Filename: "c.png", Subdir: "set"},
	}
	want := "ios/\n" +
		"├── a.png\n" +
		"└── set/\n" +
		"    ├── b.png\n" +
		"    └── c.png\n"

	if got := renderTree("ios/", specs); got != want {
		t.Errorf("renderTree() =\n%s\nwant:\n%s", got, want)
	}
}
