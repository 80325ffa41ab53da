package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"aero/interpreter-go/pkg/ast"
)

// RuntimeDiagnostic is the located summary of an error escaping Execute.
type RuntimeDiagnostic struct {
	// Kind is "name" or "evaluation".
	Kind    string
	Message string
	Span    ast.Span
}

// BuildRuntimeDiagnostic reports ok=false for errors that did not come
// from the interpreter.
func BuildRuntimeDiagnostic(err error) (RuntimeDiagnostic, bool) {
	var nameErr *NameError
	if errors.As(err, &nameErr) {
		return RuntimeDiagnostic{Kind: "name", Message: nameErr.Error(), Span: nameErr.Span}, true
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return RuntimeDiagnostic{Kind: "evaluation", Message: evalErr.Error(), Span: evalErr.Span}, true
	}
	return RuntimeDiagnostic{}, false
}

func DescribeRuntimeDiagnostic(diag RuntimeDiagnostic) string {
	message := strings.TrimSpace(diag.Message)
	if diag.Span.IsZero() {
		return "runtime: " + message
	}
	return fmt.Sprintf("runtime: %s %s", diag.Span.Start, message)
}

// attachRuntimeContext gives host errors without a position the span of
// the statement that raised them. Interpreter errors pass through.
func attachRuntimeContext(err error, node ast.Node) error {
	if err == nil {
		return nil
	}
	if _, ok := BuildRuntimeDiagnostic(err); ok {
		return err
	}
	return &EvaluationError{Message: err.Error(), Span: spanOf(node)}
}
