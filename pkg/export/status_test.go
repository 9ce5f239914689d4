package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
	"github.com/driftpro/logoexport/pkg/manifest"
)

func statusManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Brand:        "Acme",
		SupportEmail: "logos@acme.test",
		Logos: []manifest.LogoDefinition{
			{
				Name:     "app-icon-ios",
				Platform: manifest.PlatformIOS,
				Sizes: []manifest.SizeSpec{
					{Size: 1024, Filename: "app-icon-ios-1024.png"},
					{Size: 180, Filename: "app-icon-ios-180.png"},
				},
			},
			{
				Name:     "favicon",
				Platform: manifest.PlatformWeb,
				Sizes: []manifest.SizeSpec{
					{Size: 32, Filename: "favicon-32.png"},
				},
			},
		},
	}
}

func TestStatus(t *testing.T) {
	base := filepath.Join(t.TempDir(), "exported-logos")
	m := statusManifest()
	if _, err := Generate(context.Background(), m, Options{BaseDir: base}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "ios", "app-icon-ios-180.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Status(m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}

	if report.Stale {
		t.Error("freshly generated document should not be stale")
	}
	if len(report.Unlisted) != 0 {
		t.Errorf("Unlisted = %v, want none", report.Unlisted)
	}
	if got := report.Present(); got != 1 {
		t.Errorf("Present() = %d, want 1", got)
	}

	var missing []string
	for _, f := range report.Missing() {
		missing = append(missing, f.Filename)
	}
	if diff := cmp.Diff([]string{"app-icon-ios-1024.png", "favicon-32.png"}, missing); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
	if report.Complete() {
		t.Error("Complete() should be false with missing files")
	}

	for _, f := range report.Files {
		if f.Filename == "favicon-32.png" {
			if f.Platform != manifest.PlatformWeb || f.Path != filepath.Join(base, "web", "favicon-32.png") {
				t.Errorf("favicon status = %+v", f)
			}
		}
	}
}

func TestStatusComplete(t *testing.T) {
	base := t.TempDir()
	m := statusManifest()
	if _, err := Generate(context.Background(), m, Options{BaseDir: base}); err != nil {
		t.Fatal(err)
	}
	for _, f := range m.Files() {
		path := filepath.Join(base, string(f.Platform), f.Spec.Filename)
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := Status(m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if !report.Complete() {
		t.Errorf("Complete() = false, report %+v", report)
	}
}

func TestStatusMarkdownPunctuationInFilenames(t *testing.T) {
	base := t.TempDir()
	m := statusManifest()
	m.Logos[1].Sizes = []manifest.SizeSpec{
		{Size: 32, Filename: "_logo_.png"},
		{Size: 16, Filename: "*mark*.png"},
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(context.Background(), m, Options{BaseDir: base}); err != nil {
		t.Fatal(err)
	}
	for _, f := range m.Files() {
		path := filepath.Join(base, string(f.Platform), f.Spec.Filename)
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := Status(m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if len(report.Unlisted) != 0 {
		t.Errorf("Unlisted = %v, want none", report.Unlisted)
	}
	for _, f := range report.Files {
		if !f.Exists {
			t.Errorf("%s reported missing", f.Filename)
		}
	}
	if !report.Complete() {
		t.Errorf("Complete() = false, report %+v", report)
	}
}

func TestStatusStaleDocument(t *testing.T) {
	base := t.TempDir()
	m := statusManifest()
	if _, err := Generate(context.Background(), m, Options{BaseDir: base}); err != nil {
		t.Fatal(err)
	}

	m.Logos[1].Sizes = append(m.Logos[1].Sizes, manifest.SizeSpec{Size: 16, Filename: "favicon-16.png"})

	report, err := Status(m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if !report.Stale {
		t.Error("document should be stale after the manifest changed")
	}
	if diff := cmp.Diff([]string{"favicon-16.png"}, report.Unlisted); diff != "" {
		t.Errorf("Unlisted mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusUnknownChecklistEntry(t *testing.T) {
	base := t.TempDir()
	doc := "## 🌐 Web Usage\n\n- [ ] retired-logo.png\n"
	if err := os.WriteFile(filepath.Join(base, instructions.Filename), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Status(statusManifest(), Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if len(report.Files) != 1 || report.Files[0].Platform != "" || report.Files[0].Exists {
		t.Errorf("Files = %+v, want one unknown entry", report.Files)
	}
	if !report.Stale {
		t.Error("hand-written document should be stale")
	}
}

func TestStatusWithoutDocument(t *testing.T) {
	_, err := Status(statusManifest(), Options{BaseDir: t.TempDir()})
	if !apperr.Is(err, apperr.ErrCodeFilesystem) {
		t.Errorf("Status() = %v, want %s", err, apperr.ErrCodeFilesystem)
	}
	if msg := apperr.UserMessage(err); !strings.HasSuffix(msg, "Run logoexport generate first.") {
		t.Errorf("UserMessage() = %q, want the generate hint", msg)
	}
}
