// Package parser builds an Aero syntax tree from a token sequence using
// recursive descent with a single token of lookahead.
package parser

import (
	"unicode/utf8"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/lexer"
)

// Parser consumes a token slice produced by lexer.Tokenize. A Parser is
// single use.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New returns a parser over tokens. The slice should end with an EOF token;
// one is synthesised when it does not.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds a Program from tokens. On failure no partial tree is
// returned.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// ParseSource tokenizes and parses source in one step.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start := p.current()
	body, err := p.parseStatementsUntil(lexer.EOF)
	if err != nil {
		return nil, err
	}
	program := ast.NewProgram(body)
	if len(body) > 0 {
		ast.SetSpan(program, p.spanFrom(start))
	}
	return program, nil
}

func (p *Parser) current() lexer.Token {
	return p.peek(0)
}

func (p *Parser) peek(n int) lexer.Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	eof := lexer.Token{Type: lexer.EOF}
	if len(p.tokens) > 0 {
		last := p.tokens[len(p.tokens)-1]
		eof.Line, eof.Column = last.Line, last.Column
	}
	return eof
}

func (p *Parser) check(typ lexer.Type) bool {
	return p.current().Type == typ
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

// match consumes the current token when it has the given type.
func (p *Parser) match(typ lexer.Type) bool {
	if p.check(typ) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(typ lexer.Type) (lexer.Token, error) {
	if !p.check(typ) {
		return lexer.Token{}, newSyntaxError(typ.Describe(), p.current())
	}
	return p.advance(), nil
}

// spanFrom covers the source from start up to the end of the last consumed
// token.
func (p *Parser) spanFrom(start lexer.Token) ast.Span {
	span := ast.Span{Start: tokenStart(start), End: tokenStart(start)}
	if p.pos > 0 && p.pos <= len(p.tokens) {
		span.End = tokenEnd(p.tokens[p.pos-1])
	}
	return span
}

func tokenStart(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

func tokenEnd(tok lexer.Token) ast.Position {
	width := utf8.RuneCountInString(tok.Literal())
	return ast.Position{Line: tok.Line, Column: tok.Column + width}
}
