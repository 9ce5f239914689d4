package export

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperr "github.com/driftpro/logoexport/pkg/errors"
	"github.com/driftpro/logoexport/pkg/instructions"
	"github.com/driftpro/logoexport/pkg/manifest"
	"github.com/driftpro/logoexport/pkg/observability"
)

type recordingHooks struct {
	observability.NoopExportHooks
	mu     sync.Mutex
	dirs   []string
	writes []string
}

func (h *recordingHooks) OnDirEnsured(_ context.Context, dir string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dirs = append(h.dirs, dir)
}

func (h *recordingHooks) OnInstructionsWritten(_ context.Context, path string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writes = append(h.writes, path)
}

func TestGenerateCreatesTree(t *testing.T) {
	base := filepath.Join(t.TempDir(), "exported-logos")
	hooks := &recordingHooks{}

	res, err := Generate(context.Background(), manifest.Default(), Options{BaseDir: base, Hooks: hooks})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, p := range manifest.Platforms {
		info, err := os.Stat(filepath.Join(base, string(p)))
		if err != nil {
			t.Fatalf("platform dir %s: %v", p, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", p)
		}
	}

	wantDirs := []string{
		filepath.Join(base, "ios"),
		filepath.Join(base, "android"),
		filepath.Join(base, "web"),
		filepath.Join(base, "print"),
	}
	if diff := cmp.Diff(wantDirs, res.Dirs); diff != "" {
		t.Errorf("Result.Dirs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(append([]string{base}, wantDirs...), hooks.dirs); diff != "" {
		t.Errorf("OnDirEnsured calls mismatch (-want +got):\n%s", diff)
	}

	wantPath := filepath.Join(base, instructions.Filename)
	if res.InstructionsPath != wantPath {
		t.Errorf("InstructionsPath = %q, want %q", res.InstructionsPath, wantPath)
	}
	if diff := cmp.Diff([]string{wantPath}, hooks.writes); diff != "" {
		t.Errorf("OnInstructionsWritten calls mismatch (-want +got):\n%s", diff)
	}
	if res.FileCount != manifest.Default().Count() {
		t.Errorf("FileCount = %d, want %d", res.FileCount, manifest.Default().Count())
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read instructions: %v", err)
	}
	if len(data) != res.Bytes {
		t.Errorf("Bytes = %d, file has %d", res.Bytes, len(data))
	}
}

func TestGenerateMatchesRender(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	m := manifest.Default()

	res, err := Generate(context.Background(), m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want, err := instructions.Render(m, instructions.Options{BaseDir: base})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	got, err := os.ReadFile(res.InstructionsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(want, got) {
		t.Error("written document differs from Render output")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	m := manifest.Default()

	var docs [][]byte
	for _, name := range []string{"a", "b"} {
		// Default BaseDir in both runs so the embedded paths match.
		if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
		t.Chdir(filepath.Join(dir, name))

		res, err := Generate(context.Background(), m, Options{})
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		data, err := os.ReadFile(res.InstructionsPath)
		if err != nil {
			t.Fatal(err)
		}
		docs = append(docs, data)
	}
	if !bytes.Equal(docs[0], docs[1]) {
		t.Error("two runs produced different documents")
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "exported-logos")
	m := manifest.Default()

	first, err := Generate(context.Background(), m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	before, _ := os.ReadFile(first.InstructionsPath)

	second, err := Generate(context.Background(), m, Options{BaseDir: base})
	if err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	after, _ := os.ReadFile(second.InstructionsPath)

	if !bytes.Equal(before, after) {
		t.Error("re-running Generate changed the document")
	}
}

func TestGenerateKeepsExistingFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "exported-logos")
	if err := os.MkdirAll(filepath.Join(base, "web"), 0o755); err != nil {
		t.Fatal(err)
	}
	png := filepath.Join(base, "web", "logo-400.png")
	if err := os.WriteFile(png, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(base, instructions.Filename)
	if err := os.WriteFile(stale, []byte("old instructions that are much longer than nothing"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := manifest.Default()
	if _, err := Generate(context.Background(), m, Options{BaseDir: base}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	data, err := os.ReadFile(png)
	if err != nil || string(data) != "existing" {
		t.Errorf("unrelated file changed: %q, %v", data, err)
	}
	want, _ := instructions.Render(m, instructions.Options{BaseDir: base})
	got, _ := os.ReadFile(stale)
	if !bytes.Equal(want, got) {
		t.Error("instructions file was not replaced with the rendered document")
	}
}

func TestGenerateReadOnlyBase(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	base := filepath.Join(t.TempDir(), "exported-logos")
	if err := os.Mkdir(base, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(base, 0o755) })

	_, err := Generate(context.Background(), manifest.Default(), Options{BaseDir: base})
	if err == nil {
		t.Fatal("Generate() should fail on a read-only base directory")
	}
	if !apperr.Is(err, apperr.ErrCodeFilesystem) {
		t.Errorf("error code = %s, want %s", apperr.GetCode(err), apperr.ErrCodeFilesystem)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("error should wrap *fs.PathError, got %T", errors.Unwrap(err))
	}
	if _, err := os.Stat(filepath.Join(base, instructions.Filename)); !os.IsNotExist(err) {
		t.Error("instructions file should not exist after failure")
	}
}

func TestGenerateBaseIsFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "exported-logos")
	if err := os.WriteFile(base, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Generate(context.Background(), manifest.Default(), Options{BaseDir: base})
	if !apperr.Is(err, apperr.ErrCodeFilesystem) {
		t.Errorf("Generate() = %v, want %s", err, apperr.ErrCodeFilesystem)
	}
}

func TestGenerateNilManifest(t *testing.T) {
	_, err := Generate(context.Background(), nil, Options{BaseDir: t.TempDir()})
	if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("Generate(nil) = %v, want %s", err, apperr.ErrCodeInvalidInput)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	base := filepath.Join(t.TempDir(), "out")

	_, err := Generate(ctx, manifest.Default(), Options{BaseDir: base})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() = %v, want context.Canceled", err)
	}
}
