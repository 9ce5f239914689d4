package manifest

// Platform is an export destination. Its string value is also the name of the
// subdirectory created under the export base directory.
type Platform string

// Supported platforms, in document order.
const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
	PlatformPrint   Platform = "print"
)

// Platforms lists every platform in the order directories are created and
// document sections are rendered.
var Platforms = []Platform{PlatformIOS, PlatformAndroid, PlatformWeb, PlatformPrint}

// PlatformInfo holds the display metadata of a platform section.
type PlatformInfo struct {
	Title     string // section heading, e.g. "iOS App Icons"
	Icon      string // emoji prefix of the heading
	Intro     string // one-line usage hint under the heading
	TreeRoot  string // root label of the directory-tree diagram
	Checklist string // checklist heading
}

var platformInfo = map[Platform]PlatformInfo{
	PlatformIOS: {
		Title:     "iOS App Icons",
		Icon:      "📱",
		Intro:     "Place these files in your iOS project:",
		TreeRoot:  "ios/",
		Checklist: "iOS App Store",
	},
	PlatformAndroid: {
		Title:     "Android App Icons",
		Icon:      "🤖",
		Intro:     "Place these files in your Android project:",
		TreeRoot:  "android/app/src/main/res/",
		Checklist: "Android Play Store",
	},
	PlatformWeb: {
		Title:     "Web Usage",
		Icon:      "🌐",
		Intro:     "Use these files for web applications:",
		TreeRoot:  "web/",
		Checklist: "Web Application",
	},
	PlatformPrint: {
		Title:     "Print Usage",
		Icon:      "🖨️",
		Intro:     "Use these files for print materials:",
		TreeRoot:  "print/",
		Checklist: "Print Materials",
	},
}

// Valid reports whether p is one of [Platforms].
func (p Platform) Valid() bool {
	_, ok := platformInfo[p]
	return ok
}

// Info returns the display metadata for p. Unknown platforms get a generic
// section derived from the platform name.
func (p Platform) Info() PlatformInfo {
	if info, ok := platformInfo[p]; ok {
		return info
	}
	return PlatformInfo{
		Title:     string(p),
		Intro:     "Use these files:",
		TreeRoot:  string(p) + "/",
		Checklist: string(p),
	}
}

// String implements fmt.Stringer.
func (p Platform) String() string { return string(p) }
