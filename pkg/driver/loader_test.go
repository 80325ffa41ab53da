package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aero/interpreter-go/pkg/lexer"
	"aero/interpreter-go/pkg/parser"
)

func writeSource(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestCompileReadsFile(t *testing.T) {
	path := writeSource(t, "main.aero", "x = 1\nprint(x)\n")
	program, err := Compile(path)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if len(program.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Body))
	}
}

func TestCompileMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.aero")
	_, err := NewLoader().Compile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "driver: read ") {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestCompileDirectory(t *testing.T) {
	if _, err := NewLoader().Compile(t.TempDir()); err == nil {
		t.Fatalf("expected error compiling a directory")
	}
}

func TestCompileSourceCachesIdenticalSources(t *testing.T) {
	loader := NewLoader()
	first, err := loader.CompileSource("a", "print(1)")
	if err != nil {
		t.Fatalf("CompileSource error: %v", err)
	}
	second, err := loader.CompileSource("b", "print(1)")
	if err != nil {
		t.Fatalf("CompileSource error: %v", err)
	}
	if first != second {
		t.Fatalf("identical sources compiled twice")
	}
	third, err := loader.CompileSource("c", "print(2)")
	if err != nil {
		t.Fatalf("CompileSource error: %v", err)
	}
	if third == first {
		t.Fatalf("different sources share a tree")
	}
	stats := loader.Stats()
	if stats.Entries != 2 || stats.Hits != 1 || stats.Misses != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestCompileSourceDoesNotCacheFailures(t *testing.T) {
	loader := NewLoader()
	for i := 0; i < 2; i++ {
		_, err := loader.CompileSource("bad", "print(")
		if !errors.Is(err, parser.ErrSyntax) {
			t.Fatalf("expected syntax error, got %v", err)
		}
	}
	if stats := loader.Stats(); stats.Entries != 0 || stats.Hits != 0 {
		t.Fatalf("failure was cached: %+v", stats)
	}
	if _, err := loader.CompileSource("bad", "@"); !errors.Is(err, lexer.ErrLexical) {
		t.Fatalf("expected lexical error, got %v", err)
	}
}

func TestCacheLookupVerifiesSource(t *testing.T) {
	loader := NewLoader()
	program, err := loader.CompileSource("a", "x")
	if err != nil {
		t.Fatalf("CompileSource error: %v", err)
	}
	// Force a collision: the entry for "x" stored under the key of "y".
	loader.store(42, "x", program)
	if _, ok := loader.lookup(42, "y"); ok {
		t.Fatalf("lookup matched a different source")
	}
	if got, ok := loader.lookup(42, "x"); !ok || got != program {
		t.Fatalf("lookup missed the stored source")
	}
}

func TestTokens(t *testing.T) {
	path := writeSource(t, "t.aero", "a + 1")
	tokens, err := Tokens(path)
	if err != nil {
		t.Fatalf("Tokens error: %v", err)
	}
	if len(tokens) != 4 || tokens[3].Type != lexer.EOF {
		t.Fatalf("tokens = %v", tokens)
	}
}
