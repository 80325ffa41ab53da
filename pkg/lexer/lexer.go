// Package lexer converts Aero source text into a token sequence.
package lexer

import (
	"fmt"
	"math/big"
	"unicode"
)

// lexer holds the scanning state for a single Tokenize call.
type lexer struct {
	src    []rune
	pos    int
	line   int
	col    int
	tokens []Token
}

// Tokenize scans the whole source eagerly. The returned slice always ends
// with exactly one EOF token; on error no tokens are returned.
func Tokenize(source string) ([]Token, error) {
	l := &lexer{src: []rune(source), line: 1, col: 1}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) run() error {
	for !l.atEnd() {
		ch := l.src[l.pos]
		line, col := l.line, l.col

		switch {
		case unicode.IsSpace(ch):
			l.advance()
			continue
		case ch == '/' && l.peek() == '/':
			l.skipComment()
			continue
		case isDigit(ch):
			l.readNumber(line, col)
			continue
		case isIdentStart(ch):
			l.readIdent(line, col)
			continue
		case ch == '"':
			if err := l.readString(line, col); err != nil {
				return err
			}
			continue
		}

		typ, width, err := l.readOperator(ch)
		if err != nil {
			return err
		}
		for i := 0; i < width; i++ {
			l.advance()
		}
		l.emit(Token{Type: typ}, line, col)
	}
	l.emit(Token{Type: EOF}, l.line, l.col)
	return nil
}

// readOperator classifies punctuation using one character of lookahead for
// the two-character operators.
func (l *lexer) readOperator(ch rune) (Type, int, error) {
	next := l.peek()
	switch ch {
	case '+':
		return ADD, 1, nil
	case '-':
		return SUB, 1, nil
	case '*':
		return MUL, 1, nil
	case '/':
		return QUO, 1, nil
	case '%':
		return REM, 1, nil
	case '(':
		return LPAREN, 1, nil
	case ')':
		return RPAREN, 1, nil
	case '{':
		return LBRACE, 1, nil
	case '}':
		return RBRACE, 1, nil
	case ',':
		return COMMA, 1, nil
	case ';':
		return SEMICOLON, 1, nil
	case '=':
		if next == '=' {
			return EQL, 2, nil
		}
		return ASSIGN, 1, nil
	case '<':
		if next == '=' {
			return LEQ, 2, nil
		}
		return LSS, 1, nil
	case '>':
		if next == '=' {
			return GEQ, 2, nil
		}
		return GTR, 1, nil
	case '!':
		if next == '=' {
			return NEQ, 2, nil
		}
	case '&':
		if next == '&' {
			return LAND, 2, nil
		}
	case '|':
		if next == '|' {
			return LOR, 2, nil
		}
	}
	return EOF, 0, l.errorf("unexpected character %q", ch)
}

func (l *lexer) skipComment() {
	for !l.atEnd() && l.src[l.pos] != '\n' {
		l.advance()
	}
}

func (l *lexer) readNumber(line, col int) {
	start := l.pos
	for !l.atEnd() && isDigit(l.src[l.pos]) {
		l.advance()
	}
	// A run of ASCII digits always parses.
	n, _ := new(big.Int).SetString(string(l.src[start:l.pos]), 10)
	l.emit(Token{Type: NUMBER, Int: n}, line, col)
}

func (l *lexer) readIdent(line, col int) {
	start := l.pos
	for !l.atEnd() && isIdentPart(l.src[l.pos]) {
		l.advance()
	}
	name := string(l.src[start:l.pos])
	switch name {
	case "true", "false":
		l.emit(Token{Type: BOOL, Bool: name == "true"}, line, col)
		return
	}
	if kw, ok := keywords[name]; ok {
		l.emit(Token{Type: kw}, line, col)
		return
	}
	l.emit(Token{Type: IDENT, Text: name}, line, col)
}

// readString scans a double-quoted literal. A backslash skips the following
// character without decoding it, so the payload is the raw text between the
// quotes.
func (l *lexer) readString(line, col int) error {
	l.advance() // opening quote
	start := l.pos
	for !l.atEnd() && l.src[l.pos] != '"' {
		if l.src[l.pos] == '\\' {
			l.advance()
			if l.atEnd() {
				break
			}
		}
		l.advance()
	}
	if l.atEnd() {
		return &Error{Message: "unterminated string", Line: line, Column: col}
	}
	text := string(l.src[start:l.pos])
	l.advance() // closing quote
	l.emit(Token{Type: STRING, Text: text}, line, col)
	return nil
}

func (l *lexer) emit(tok Token, line, col int) {
	tok.Line = line
	tok.Column = col
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() rune {
	if l.pos+1 < len(l.src) {
		return l.src[l.pos+1]
	}
	return 0
}

func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *lexer) errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...), Line: l.line, Column: l.col}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
