package instructions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/driftpro/logoexport/pkg/manifest"
)

// scenarioManifest holds a single iOS logo with two sizes.
func scenarioManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Brand:        "Acme",
		SupportEmail: "logos@acme.test",
		Logos: []manifest.LogoDefinition{{
			Name:     "app-icon-ios",
			Platform: manifest.PlatformIOS,
			Sizes: []manifest.SizeSpec{
				{Size: 1024, Filename: "app-icon-ios-1024.png"},
				{Size: 180, Filename: "app-icon-ios-180.png"},
			},
		}},
	}
}

const scenarioGolden = "# Acme Logo Export Instructions\n" +
	"\n" +
	"## 📱 iOS App Icons\n" +
	"Place these files in your iOS project:\n" +
	"\n" +
	"```\n" +
	"ios/\n" +
	"├── app-icon-ios-1024.png\n" +
	"└── app-icon-ios-180.png\n" +
	"```\n" +
	"\n" +
	"### 🔧 Export Commands\n" +
	"```bash\n" +
	"# svgexport (recommended)\n" +
	"npm install -g svgexport\n" +
	"svgexport public/app-icon-ios.svg exported-logos/ios/app-icon-ios-1024.png 1024:1024\n" +
	"# Inkscape\n" +
	"inkscape public/app-icon-ios.svg --export-filename=exported-logos/ios/app-icon-ios-1024.png --export-width=1024 --export-height=1024\n" +
	"# ImageMagick\n" +
	"convert public/app-icon-ios.svg -resize 1024x1024 exported-logos/ios/app-icon-ios-1024.png\n" +
	"# ... repeat for the remaining 1 size(s) in the checklist below\n" +
	"```\n" +
	"\n" +
	"### 📋 Checklist: iOS App Store\n" +
	"- [ ] app-icon-ios-1024.png\n" +
	"- [ ] app-icon-ios-180.png\n" +
	"\n" +
	"## 📞 Support\n" +
	"For logo-related questions: logos@acme.test\n"

func TestRenderScenarioSingleIOSLogo(t *testing.T) {
	got, err := Render(scenarioManifest(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if diff := cmp.Diff(scenarioGolden, string(got)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(manifest.Default(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Render(manifest.Default(), Options{})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Render() output differs between runs")
		}
	}
}

func TestRenderDefaultChecklistMatchesManifest(t *testing.T) {
	m := manifest.Default()
	doc, err := Render(m, Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	items, err := ParseChecklist(doc)
	if err != nil {
		t.Fatalf("ParseChecklist() error: %v", err)
	}

	var got, want []string
	for _, it := range items {
		if it.Checked {
			t.Errorf("item %q should be unchecked", it.Filename)
		}
		got = append(got, it.Filename)
	}
	for _, f := range m.Files() {
		want = append(want, f.Spec.Filename)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("checklist mismatch (-want +got):\n%s", diff)
	}

	lines := 0
	for _, line := range strings.Split(string(doc), "\n") {
		if strings.HasPrefix(line, "- [ ] ") {
			lines++
		}
	}
	if lines != m.Count() {
		t.Errorf("checklist lines = %d, want %d", lines, m.Count())
	}
}

func TestRenderChecklistEscapesMarkdown(t *testing.T) {
	names := []string{
		"_logo_.png",
		"*mark*.png",
		"__bold__.png",
		"`tick`.png",
		"[x]-link.png",
		"<b>tag.png",
		"#1.png",
		"plain_name.png",
	}
	m := scenarioManifest()
	m.Logos[0].Sizes = nil
	for i, name := range names {
		m.Logos[0].Sizes = append(m.Logos[0].Sizes, manifest.SizeSpec{Size: 16 * (i + 1), Filename: name})
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	doc, err := Render(m, Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(doc, []byte(`- [ ] \_logo\_.png`)) {
		t.Errorf("checklist item not escaped:\n%s", doc)
	}
	if !bytes.Contains(doc, []byte("└── plain_name.png\n")) {
		t.Errorf("tree line should stay literal inside the fence:\n%s", doc)
	}

	items, err := ParseChecklist(doc)
	if err != nil {
		t.Fatalf("ParseChecklist() error: %v", err)
	}
	var got []string
	for _, it := range items {
		got = append(got, it.Filename)
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("checklist round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDefaultSections(t *testing.T) {
	doc, err := Render(manifest.Default(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(doc)

	wantInOrder := []string{
		"# DriftPro Logo Export Instructions",
		"## 📱 iOS App Icons",
		"└── AppIcon.appiconset/",
		"    ├── app-icon-ios-1024.png (App Store)",
		"    └── app-icon-ios-20.png (Notifications)",
		"## 🤖 Android App Icons",
		"android/app/src/main/res/",
		"├── play-store/",
		"svgexport public/app-icon-android.svg exported-logos/android/app-icon-android-512.png 512:512",
		"## 🌐 Web Usage",
		"├── logo-400.png (Large displays)",
		"└── favicon-16.png (Small favicon)",
		"svgexport public/logo-white.svg exported-logos/web/logo-white-400.png 400:120",
		"convert public/favicon.svg -resize 32x32 exported-logos/web/favicon-32.png",
		"Print Usage\n",
		"inkscape public/logo.svg --export-filename=exported-logos/print/logo-print-2400.png --export-width=2400 --export-height=720",
		"## 🎨 Design Notes",
		"- **Primary Color:** #1F2937 (Dark gray)",
		"- **Secondary Color:** #374151 (Medium gray)",
		"- **White:** #FFFFFF (Pure white)",
		"- **Font:** Poppins, Montserrat, Raleway (system fallbacks)",
		"- **Design:** Modern operations gear with rounded square background",
		"## 📞 Support",
		"For logo-related questions: support@driftpro.no",
	}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(out[pos:], want)
		if idx < 0 {
			t.Fatalf("document missing %q after offset %d", want, pos)
		}
		pos += idx + len(want)
	}
}

func TestRenderOptions(t *testing.T) {
	doc, err := Render(scenarioManifest(), Options{
		BaseDir:   "build/brand assets",
		SourceDir: "design/svg",
		Tools:     []Tool{ImageMagick},
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(doc)

	want := "convert design/svg/app-icon-ios.svg -resize 1024x1024 'build/brand assets/ios/app-icon-ios-1024.png'"
	if !strings.Contains(out, want) {
		t.Errorf("document missing %q:\n%s", want, out)
	}
	if strings.Contains(out, "svgexport") || strings.Contains(out, "inkscape") {
		t.Error("document should only contain the requested tool")
	}
}

func TestRenderSkipsPlatformsWithoutLogos(t *testing.T) {
	doc, err := Render(scenarioManifest(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, heading := range []string{"Android", "Web Usage", "Print Usage"} {
		if strings.Contains(string(doc), heading) {
			t.Errorf("document should not contain a %q section", heading)
		}
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputPath("exported-logos", manifest.PlatformWeb, "favicon-16.png"); got != "exported-logos/web/favicon-16.png" {
		t.Errorf("OutputPath() = %q", got)
	}
	if got := OutputPath("out/", manifest.PlatformIOS, "a.png"); got != "out/ios/a.png" {
		t.Errorf("OutputPath() = %q", got)
	}
}
