package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: demo
default: app
targets:
  app: src/main.aero
  tool: scripts/tool.aero
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if manifest.Name != "demo" {
		t.Fatalf("Name = %q, want demo", manifest.Name)
	}
	if got := strings.Join(manifest.TargetOrder, ","); got != "app,tool" {
		t.Fatalf("TargetOrder = %q, want app,tool", got)
	}

	name, err := manifest.DefaultTarget()
	if err != nil || name != "app" {
		t.Fatalf("DefaultTarget() = %q, %v", name, err)
	}
	target, err := manifest.TargetPath("app")
	if err != nil {
		t.Fatalf("TargetPath error: %v", err)
	}
	want := filepath.Join(filepath.Dir(path), "src", "main.aero")
	if target != want {
		t.Fatalf("TargetPath(app) = %q, want %q", target, want)
	}
	if _, err := manifest.TargetPath("missing"); err == nil {
		t.Fatalf("expected error for unknown target")
	}
}

func TestManifestSingleTargetIsDefault(t *testing.T) {
	manifest, err := LoadManifest(writeManifest(t, `
name: solo
targets:
  only: main.aero
`))
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	name, err := manifest.DefaultTarget()
	if err != nil || name != "only" {
		t.Fatalf("DefaultTarget() = %q, %v", name, err)
	}
}

func TestManifestAmbiguousDefault(t *testing.T) {
	manifest, err := LoadManifest(writeManifest(t, `
targets:
  a: a.aero
  b: b.aero
`))
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if _, err := manifest.DefaultTarget(); err == nil || !strings.Contains(err.Error(), "a, b") {
		t.Fatalf("expected ambiguity error naming targets, got %v", err)
	}
}

func TestLoadManifestRejectsInvalidFiles(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"unknown field", "name: x\nversion: 1\n", "field version not found"},
		{"undefined default", "default: app\ntargets:\n  other: o.aero\n", `default target "app" is not defined`},
		{"empty target path", "targets:\n  app: \"\"\n", `target "app" has no path`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, tc.contents))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	path := writeManifest(t, "name: walk\n")
	nested := filepath.Join(filepath.Dir(path), "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest error: %v", err)
	}
	if found != path {
		t.Fatalf("FindManifest = %q, want %q", found, path)
	}
}

func TestFindManifestNotFound(t *testing.T) {
	// TempDir lives outside any project, so the walk reaches the root.
	dir := t.TempDir()
	_, err := FindManifest(dir)
	if err == nil {
		t.Skip("an aero.yml exists above the temp dir")
	}
	if !errors.Is(err, ErrManifestNotFound) {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	return abs
}
