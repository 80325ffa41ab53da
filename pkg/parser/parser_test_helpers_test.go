package parser

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"aero/interpreter-go/pkg/ast"
)

func checkSpan(t testing.TB, label string, span ast.Span, startLine, startCol, endLine, endCol int) {
	t.Helper()
	if span.Start.Line != startLine || span.Start.Column != startCol {
		t.Fatalf("%s start span mismatch: got (%d,%d), want (%d,%d)", label, span.Start.Line, span.Start.Column, startLine, startCol)
	}
	if span.End.Line != endLine || span.End.Column != endCol {
		t.Fatalf("%s end span mismatch: got (%d,%d), want (%d,%d)", label, span.End.Line, span.End.Column, endLine, endCol)
	}
}

// assertProgramsEqual compares trees through their JSON form, which leaves
// spans out.
func assertProgramsEqual(t testing.TB, expected interface{}, actual interface{}) {
	t.Helper()
	wantJSON, _ := json.Marshal(expected)
	gotJSON, _ := json.Marshal(actual)
	var wantAny interface{}
	var gotAny interface{}
	_ = json.Unmarshal(wantJSON, &wantAny)
	_ = json.Unmarshal(gotJSON, &gotAny)
	if reflect.DeepEqual(wantAny, gotAny) {
		return
	}
	wantPretty, _ := json.MarshalIndent(wantAny, "", "  ")
	gotPretty, _ := json.MarshalIndent(gotAny, "", "  ")
	t.Fatalf("program mismatch\nexpected: %s\n   actual: %s", wantPretty, gotPretty)
}

func mustParse(t testing.TB, source string) *ast.Program {
	t.Helper()
	program, err := ParseSource(source)
	if err != nil {
		t.Fatalf("ParseSource(%q) error: %v", source, err)
	}
	return program
}

func mustFailSyntax(t testing.TB, source string) *SyntaxError {
	t.Helper()
	program, err := ParseSource(source)
	if err == nil {
		t.Fatalf("ParseSource(%q) succeeded with %s, want syntax error", source, ast.Render(program))
	}
	if program != nil {
		t.Fatalf("ParseSource(%q) returned a partial tree", source)
	}
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("ParseSource(%q) error = %v, want ErrSyntax", source, err)
	}
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("ParseSource(%q) error type %T", source, err)
	}
	return syntaxErr
}
