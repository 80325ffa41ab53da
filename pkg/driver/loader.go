// Package driver connects source files to the Aero pipeline: it reads and
// compiles programs, caches compiled trees, formats diagnostics, and loads
// the optional aero.yml project manifest.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/segmentio/fasthash/fnv1a"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/lexer"
	"aero/interpreter-go/pkg/parser"
)

// Loader compiles Aero sources and keeps the resulting trees keyed by the
// FNV-1a hash of the source text. Identical sources share one tree, which
// callers must treat as immutable.
type Loader struct {
	mu     sync.Mutex
	cache  map[uint64][]cacheEntry
	hits   int
	misses int
}

type cacheEntry struct {
	source  string
	program *ast.Program
}

// LoaderStats reports cache effectiveness.
type LoaderStats struct {
	Entries int
	Hits    int
	Misses  int
}

// NewLoader constructs a loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{cache: make(map[uint64][]cacheEntry)}
}

var defaultLoader = NewLoader()

// Compile reads path and compiles it with the shared default loader.
func Compile(path string) (*ast.Program, error) {
	return defaultLoader.Compile(path)
}

// Compile reads path and runs the lexer and parser over it.
func (l *Loader) Compile(path string) (*ast.Program, error) {
	if path == "" {
		return nil, fmt.Errorf("driver: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("driver: resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("driver: read %s: is a directory", path)
	}
	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return l.CompileSource(path, string(source))
}

// CompileSource compiles source text. name is only used in error messages
// that carry no position of their own.
func (l *Loader) CompileSource(name string, source string) (*ast.Program, error) {
	key := fnv1a.HashString64(source)
	if program, ok := l.lookup(key, source); ok {
		return program, nil
	}
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, fmt.Errorf("driver: compile %s: no program", name)
	}
	l.store(key, source, program)
	return program, nil
}

// Tokens reads path and returns its token stream without parsing.
func Tokens(path string) ([]lexer.Token, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return lexer.Tokenize(string(source))
}

// Stats returns a snapshot of the cache counters.
func (l *Loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := 0
	for _, bucket := range l.cache {
		entries += len(bucket)
	}
	return LoaderStats{Entries: entries, Hits: l.hits, Misses: l.misses}
}

// lookup verifies a hash hit against the cached text so colliding sources
// never share a tree.
func (l *Loader) lookup(key uint64, source string) (*ast.Program, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.cache[key] {
		if entry.source == source {
			l.hits++
			return entry.program, true
		}
	}
	l.misses++
	return nil, false
}

func (l *Loader) store(key uint64, source string, program *ast.Program) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.cache[key] {
		if entry.source == source {
			return
		}
	}
	l.cache[key] = append(l.cache[key], cacheEntry{source: source, program: program})
}
