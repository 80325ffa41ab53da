package lexer

import (
	"fmt"
	"math/big"
	"strconv"
)

// Type identifies the lexical category of a token.
type Type int

// Token types. Operator names follow go/token.
const (
	EOF Type = iota

	// Literals
	NUMBER
	STRING
	BOOL
	IDENT

	// Arithmetic
	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %

	// Comparison
	EQL // ==
	NEQ // !=
	LSS // <
	LEQ // <=
	GTR // >
	GEQ // >=

	// Logical
	LAND // &&
	LOR  // ||

	ASSIGN // =

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;

	// Keywords
	IF
	ELSE
	WHILE
)

var typeNames = [...]string{
	EOF:       "EOF",
	NUMBER:    "NUMBER",
	STRING:    "STRING",
	BOOL:      "BOOL",
	IDENT:     "IDENT",
	ADD:       "+",
	SUB:       "-",
	MUL:       "*",
	QUO:       "/",
	REM:       "%",
	EQL:       "==",
	NEQ:       "!=",
	LSS:       "<",
	LEQ:       "<=",
	GTR:       ">",
	GEQ:       ">=",
	LAND:      "&&",
	LOR:       "||",
	ASSIGN:    "=",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	SEMICOLON: ";",
	IF:        "if",
	ELSE:      "else",
	WHILE:     "while",
}

var keywords = map[string]Type{
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
}

// String returns the source spelling for operators, delimiters and
// keywords, and the category name (e.g. "IDENT") for everything else.
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// IsLiteral reports whether tokens of this type carry a payload.
func (t Type) IsLiteral() bool { return t >= NUMBER && t <= IDENT }

// Describe names a token type the way diagnostics quote it.
func (t Type) Describe() string {
	switch t {
	case EOF:
		return "end of input"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case BOOL:
		return "boolean"
	case IDENT:
		return "identifier"
	}
	return "'" + t.String() + "'"
}

// Token is a single lexical unit. The payload field in use depends on Type:
// Int for NUMBER, Text for STRING and IDENT, Bool for BOOL.
type Token struct {
	Type   Type
	Int    *big.Int
	Text   string
	Bool   bool
	Line   int
	Column int
}

// Literal renders the token the way it appeared in the source.
func (t Token) Literal() string {
	switch t.Type {
	case NUMBER:
		if t.Int == nil {
			return "0"
		}
		return t.Int.String()
	case STRING:
		return `"` + t.Text + `"`
	case IDENT:
		return t.Text
	case BOOL:
		return strconv.FormatBool(t.Bool)
	case EOF:
		return ""
	default:
		return t.Type.String()
	}
}

// Describe quotes the token for diagnostics, e.g. "identifier 'x'" or "')'".
func (t Token) Describe() string {
	if t.Type.IsLiteral() {
		return fmt.Sprintf("%s %s", t.Type.Describe(), quoteLiteral(t))
	}
	return t.Type.Describe()
}

func quoteLiteral(t Token) string {
	if t.Type == STRING {
		return t.Literal()
	}
	return "'" + t.Literal() + "'"
}

func (t Token) String() string {
	if t.Type.IsLiteral() {
		return fmt.Sprintf("%d:%d\t%s\t%s", t.Line, t.Column, t.Type, t.Literal())
	}
	return fmt.Sprintf("%d:%d\t%s", t.Line, t.Column, t.Type)
}
