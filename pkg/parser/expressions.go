package parser

import (
	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/lexer"
)

// binaryLevels lists the binary operators from lowest to highest
// precedence. Every level is left-associative.
var binaryLevels = [][]lexer.Type{
	{lexer.LOR},
	{lexer.LAND},
	{lexer.EQL, lexer.NEQ},
	{lexer.LSS, lexer.LEQ, lexer.GTR, lexer.GEQ},
	{lexer.ADD, lexer.SUB},
	{lexer.MUL, lexer.QUO, lexer.REM},
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(level int) (ast.Expression, error) {
	if level == len(binaryLevels) {
		return p.parseCall()
	}
	start := p.current()
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.atAny(binaryLevels[level]) {
		op := p.advance()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		expr := ast.NewBinaryOp(op.Type.String(), left, right)
		ast.SetSpan(expr, p.spanFrom(start))
		left = expr
	}
	return left, nil
}

func (p *Parser) atAny(types []lexer.Type) bool {
	cur := p.current().Type
	for _, typ := range types {
		if cur == typ {
			return true
		}
	}
	return false
}

// parseCall handles postfix call chains such as f(a)(b).
func (p *Parser) parseCall() (ast.Expression, error) {
	start := p.current()
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.LPAREN) {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		call := ast.NewCall(expr, args)
		ast.SetSpan(call, p.spanFrom(start))
		expr = call
	}
	return expr, nil
}

// parseArguments reads a comma separated list after the opening paren,
// consuming the closing one.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	args := []ast.Expression{}
	if !p.check(lexer.RPAREN) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()
	var expr ast.Expression
	switch tok.Type {
	case lexer.NUMBER:
		expr = ast.NewNumber(tok.Int)
	case lexer.STRING:
		expr = ast.NewString(tok.Text)
	case lexer.BOOL:
		expr = ast.NewBool(tok.Bool)
	case lexer.IDENT:
		expr = ast.NewIdentifier(tok.Text)
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, newSyntaxError("expression", tok)
	}
	p.advance()
	ast.SetSpan(expr, p.spanFrom(tok))
	return expr, nil
}
