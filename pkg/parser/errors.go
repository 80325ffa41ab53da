package parser

import (
	"errors"
	"fmt"

	"aero/interpreter-go/pkg/lexer"
)

// ErrSyntax matches every error reported by the parser.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports the first structural violation found in a token
// stream. Expected describes what the grammar required at that point and
// Found is the token that was there instead.
type SyntaxError struct {
	Expected string
	Found    lexer.Token
	Message  string
	Line     int
	Column   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func newSyntaxError(expected string, found lexer.Token) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Found:    found,
		Message:  fmt.Sprintf("expected %s, got %s", expected, found.Describe()),
		Line:     found.Line,
		Column:   found.Column,
	}
}
