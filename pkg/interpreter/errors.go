package interpreter

import (
	"errors"
	"fmt"

	"aero/interpreter-go/pkg/ast"
)

var (
	// ErrName matches lookups of names that are bound nowhere.
	ErrName = errors.New("name error")
	// ErrEvaluation matches every other runtime failure.
	ErrEvaluation = errors.New("evaluation error")
)

// NameError reports an identifier with no binding and no builtin.
type NameError struct {
	Name string
	Span ast.Span
}

func (e *NameError) Error() string {
	return "undefined variable: " + e.Name
}

func (e *NameError) Unwrap() error { return ErrName }

// EvaluationError reports a type mismatch, a bad call, division by zero or
// a failing builtin. Cause is set when a host error was wrapped.
type EvaluationError struct {
	Message string
	Span    ast.Span
	Cause   error
}

func (e *EvaluationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *EvaluationError) Is(target error) bool { return target == ErrEvaluation }

func (e *EvaluationError) Unwrap() error { return e.Cause }

func evalErrorf(node ast.Node, format string, args ...any) *EvaluationError {
	return &EvaluationError{Message: fmt.Sprintf(format, args...), Span: spanOf(node)}
}

func spanOf(node ast.Node) ast.Span {
	if node == nil {
		return ast.Span{}
	}
	return node.Span()
}
