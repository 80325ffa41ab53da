package lexer

import (
	"errors"
	"fmt"
)

// ErrLexical is matched by every error returned from Tokenize.
var ErrLexical = errors.New("lexical error")

// Error reports an unrecognised character or an unterminated string.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer: line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *Error) Unwrap() error { return ErrLexical }
