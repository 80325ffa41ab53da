package interpreter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"aero/interpreter-go/pkg/lexer"
	"aero/interpreter-go/pkg/parser"
)

// execFixture is one program under testdata/fixtures with its expected
// output. Error is one of lexical, syntax, name or evaluation.
type execFixture struct {
	Description string `yaml:"description"`
	Source      string `yaml:"source"`
	Stdout      string `yaml:"stdout"`
	Error       string `yaml:"error"`
	Message     string `yaml:"message"`
}

func TestExecFixtures(t *testing.T) {
	root := filepath.Join("testdata", "fixtures")
	paths := collectExecFixtures(t, root)
	if len(paths) == 0 {
		t.Fatalf("no fixtures under %s", root)
	}
	for _, path := range paths {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		t.Run(name, func(t *testing.T) {
			runExecFixture(t, path)
		})
	}
}

func collectExecFixtures(t *testing.T, root string) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(root, "*.yml"))
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	sort.Strings(paths)
	return paths
}

func readExecFixture(t *testing.T, path string) execFixture {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var fixture execFixture
	if err := decoder.Decode(&fixture); err != nil {
		t.Fatalf("decode fixture %s: %v", path, err)
	}
	return fixture
}

func runExecFixture(t *testing.T, path string) {
	t.Helper()
	fixture := readExecFixture(t, path)

	var stdout bytes.Buffer
	err := runFixtureSource(fixture.Source, &stdout)

	if got := stdout.String(); got != fixture.Stdout {
		t.Fatalf("stdout mismatch\nexpected: %q\n     got: %q", fixture.Stdout, got)
	}
	if fixture.Error == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected %s error, got none", fixture.Error)
	}
	if kind := fixtureErrorKind(err); kind != fixture.Error {
		t.Fatalf("error kind = %s, want %s (%v)", kind, fixture.Error, err)
	}
	if fixture.Message != "" && !strings.Contains(err.Error(), fixture.Message) {
		t.Fatalf("error %q does not mention %q", err.Error(), fixture.Message)
	}
}

func runFixtureSource(source string, stdout *bytes.Buffer) error {
	program, err := parser.ParseSource(source)
	if err != nil {
		return err
	}
	interp := New()
	interp.SetOutput(stdout)
	return interp.Execute(program)
}

func fixtureErrorKind(err error) string {
	switch {
	case errors.Is(err, lexer.ErrLexical):
		return "lexical"
	case errors.Is(err, parser.ErrSyntax):
		return "syntax"
	case errors.Is(err, ErrName):
		return "name"
	case errors.Is(err, ErrEvaluation):
		return "evaluation"
	default:
		return "unknown"
	}
}
