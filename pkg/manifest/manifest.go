package manifest

import "path"

// Manifest is the complete, ordered table of logos to export.
type Manifest struct {
	Brand        string           `toml:"brand" yaml:"brand"`
	SupportEmail string           `toml:"support_email" yaml:"support_email"`
	Design       Design           `toml:"design" yaml:"design"`
	Logos        []LogoDefinition `toml:"logos" yaml:"logos"`
}

// Design holds the static brand notes printed at the end of the instructions.
type Design struct {
	Colors      []Color  `toml:"colors" yaml:"colors"`
	Fonts       []string `toml:"fonts" yaml:"fonts"`
	FontNote    string   `toml:"font_note,omitempty" yaml:"font_note,omitempty"`
	Description string   `toml:"description" yaml:"description"`
}

// Color is one named brand color.
type Color struct {
	Name  string `toml:"name" yaml:"name"`
	Hex   string `toml:"hex" yaml:"hex"`
	Label string `toml:"label,omitempty" yaml:"label,omitempty"`
}

// LogoDefinition is one source vector logo and the raster sizes derived from it.
type LogoDefinition struct {
	Name     string     `toml:"name" yaml:"name"`
	Platform Platform   `toml:"platform" yaml:"platform"`
	Source   string     `toml:"source,omitempty" yaml:"source,omitempty"` // relative to the source dir; defaults to <name>.svg
	Sizes    []SizeSpec `toml:"sizes" yaml:"sizes"`
}

// SizeSpec is one PNG output of a LogoDefinition.
//
// Size is the output width in pixels and Height the output height, where 0
// means square. Filename is a bare .png name, unique across the manifest.
// Purpose annotates the file in the tree diagram (e.g. "App Store") and Subdir
// groups it under a folder of that diagram.
type SizeSpec struct {
	Size     int    `toml:"size" yaml:"size"`
	Height   int    `toml:"height,omitempty" yaml:"height,omitempty"`
	Filename string `toml:"filename" yaml:"filename"`
	Purpose  string `toml:"purpose,omitempty" yaml:"purpose,omitempty"`
	Subdir   string `toml:"subdir,omitempty" yaml:"subdir,omitempty"`
}

// Dimensions returns the output width and height in pixels.
func (s SizeSpec) Dimensions() (width, height int) {
	if s.Height > 0 {
		return s.Size, s.Height
	}
	return s.Size, s.Size
}

// SourcePath returns the path of the logo's vector source. Source is resolved
// against sourceDir unless it is absolute; an empty Source means <Name>.svg.
// Paths use forward slashes because they are printed into shell commands.
func (l LogoDefinition) SourcePath(sourceDir string) string {
	src := l.Source
	if src == "" {
		src = l.Name + ".svg"
	}
	if path.IsAbs(src) {
		return src
	}
	return path.Join(sourceDir, src)
}

// File is a flattened view of one expected output.
type File struct {
	Platform Platform
	Logo     *LogoDefinition
	Spec     SizeSpec
}

// Files returns every expected output in declaration order.
func (m *Manifest) Files() []File {
	var files []File
	for i := range m.Logos {
		logo := &m.Logos[i]
		for _, spec := range logo.Sizes {
			files = append(files, File{Platform: logo.Platform, Logo: logo, Spec: spec})
		}
	}
	return files
}

// Count returns the total number of SizeSpecs in the manifest.
func (m *Manifest) Count() int {
	n := 0
	for _, logo := range m.Logos {
		n += len(logo.Sizes)
	}
	return n
}

// ForPlatform returns the logos targeting p, in declaration order.
func (m *Manifest) ForPlatform(p Platform) []LogoDefinition {
	var out []LogoDefinition
	for _, logo := range m.Logos {
		if logo.Platform == p {
			out = append(out, logo)
		}
	}
	return out
}

// Platforms returns the platforms that have at least one logo, in the
// canonical order of [Platforms].
func (m *Manifest) Platforms() []Platform {
	var out []Platform
	for _, p := range Platforms {
		if len(m.ForPlatform(p)) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Logo returns the definition with the given name.
func (m *Manifest) Logo(name string) (LogoDefinition, bool) {
	for _, logo := range m.Logos {
		if logo.Name == name {
			return logo, true
		}
	}
	return LogoDefinition{}, false
}
