package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file FindManifest looks for.
const ManifestName = "aero.yml"

// ErrManifestNotFound is returned by FindManifest when no directory up to
// the filesystem root holds a manifest.
var ErrManifestNotFound = errors.New("manifest: aero.yml not found")

// Manifest models the aero.yml contents.
type Manifest struct {
	Path        string
	Name        string
	Default     string
	Targets     map[string]string
	TargetOrder []string
}

type manifestDisk struct {
	Name    string            `yaml:"name"`
	Default string            `yaml:"default"`
	Targets map[string]string `yaml:"targets"`
}

// LoadManifest parses aero.yml from disk. Unknown fields are rejected.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	manifest := raw.toManifest()
	manifest.Path = abs
	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", abs, err)
	}
	return manifest, nil
}

// FindManifest walks from dir up to the filesystem root and returns the
// path of the first aero.yml found.
func FindManifest(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrManifestNotFound
		}
		abs = parent
	}
}

// DefaultTarget picks the target run when none is named: the default
// entry, or the only target when there is exactly one.
func (m *Manifest) DefaultTarget() (string, error) {
	if m.Default != "" {
		return m.Default, nil
	}
	if len(m.TargetOrder) == 1 {
		return m.TargetOrder[0], nil
	}
	if len(m.TargetOrder) == 0 {
		return "", fmt.Errorf("manifest: no targets defined")
	}
	return "", fmt.Errorf("manifest: several targets and no default (%s)", strings.Join(m.TargetOrder, ", "))
}

// TargetPath resolves a target's source file relative to the manifest.
func (m *Manifest) TargetPath(name string) (string, error) {
	rel, ok := m.Targets[name]
	if !ok {
		return "", fmt.Errorf("manifest: unknown target %q", name)
	}
	if filepath.IsAbs(rel) {
		return rel, nil
	}
	return filepath.Join(filepath.Dir(m.Path), filepath.FromSlash(rel)), nil
}

func (m *Manifest) validate() error {
	for _, name := range m.TargetOrder {
		if m.Targets[name] == "" {
			return fmt.Errorf("target %q has no path", name)
		}
	}
	if m.Default != "" {
		if _, ok := m.Targets[m.Default]; !ok {
			return fmt.Errorf("default target %q is not defined", m.Default)
		}
	}
	return nil
}

func (d manifestDisk) toManifest() *Manifest {
	manifest := &Manifest{
		Name:        strings.TrimSpace(d.Name),
		Default:     strings.TrimSpace(d.Default),
		Targets:     make(map[string]string, len(d.Targets)),
		TargetOrder: make([]string, 0, len(d.Targets)),
	}
	for name, path := range d.Targets {
		name = strings.TrimSpace(name)
		manifest.Targets[name] = strings.TrimSpace(path)
		manifest.TargetOrder = append(manifest.TargetOrder, name)
	}
	sort.Strings(manifest.TargetOrder)
	return manifest
}
