package interpreter

import (
	"errors"
	"testing"

	"aero/interpreter-go/pkg/ast"
)

func TestRuntimeDiagnosticsFormatting(t *testing.T) {
	interp := New()
	errorNode := ast.ID("boom")
	ast.SetSpan(errorNode, ast.Span{
		Start: ast.Position{Line: 6, Column: 3},
		End:   ast.Position{Line: 6, Column: 7},
	})
	_, err := interp.EvaluateProgram(ast.Prog(errorNode))

	diag, ok := BuildRuntimeDiagnostic(err)
	if !ok {
		t.Fatalf("expected a runtime diagnostic for %v", err)
	}
	if diag.Kind != "name" {
		t.Fatalf("kind = %q", diag.Kind)
	}
	got := DescribeRuntimeDiagnostic(diag)
	expected := "runtime: 6:3 undefined variable: boom"
	if got != expected {
		t.Fatalf("unexpected diagnostic output:\nexpected: %s\ngot: %s", expected, got)
	}
}

func TestRuntimeDiagnosticWithoutSpan(t *testing.T) {
	diag, ok := BuildRuntimeDiagnostic(&EvaluationError{Message: "division by zero"})
	if !ok || diag.Kind != "evaluation" {
		t.Fatalf("diag = %+v, ok = %v", diag, ok)
	}
	if got := DescribeRuntimeDiagnostic(diag); got != "runtime: division by zero" {
		t.Fatalf("got %q", got)
	}
	if _, ok := BuildRuntimeDiagnostic(errors.New("other")); ok {
		t.Fatalf("foreign errors are not runtime diagnostics")
	}
}

func TestAttachRuntimeContextKeepsInterpreterErrors(t *testing.T) {
	node := ast.ID("x")
	ast.SetSpan(node, ast.Span{Start: ast.Position{Line: 1, Column: 1}})
	nameErr := &NameError{Name: "x"}
	if got := attachRuntimeContext(nameErr, node); got != error(nameErr) {
		t.Fatalf("interpreter error was rewrapped: %v", got)
	}
	wrapped := attachRuntimeContext(errors.New("host failure"), node)
	var evalErr *EvaluationError
	if !errors.As(wrapped, &evalErr) || evalErr.Span.Start.Line != 1 {
		t.Fatalf("host error not located: %#v", wrapped)
	}
}
