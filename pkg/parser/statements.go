package parser

import (
	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/lexer"
)

// parseStatementsUntil reads a statement sequence. One optional semicolon
// may follow each statement.
func (p *Parser) parseStatementsUntil(end lexer.Type) ([]ast.Statement, error) {
	body := []ast.Statement{}
	for !p.check(end) && !p.check(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		p.match(lexer.SEMICOLON)
	}
	return body, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IDENT:
		if p.peek(1).Type == lexer.ASSIGN {
			return p.parseAssign()
		}
	}
	return p.parseExpression()
}

func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	start, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	block := ast.NewBlock(body)
	ast.SetSpan(block, p.spanFrom(start))
	return block, nil
}

func (p *Parser) parseAssign() (*ast.AssignStatement, error) {
	name := p.advance()
	p.advance() // '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := ast.NewAssign(name.Text, value)
	ast.SetSpan(stmt, p.spanFrom(name))
	return stmt, nil
}

func (p *Parser) parseIf() (*ast.IfStatement, error) {
	start := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var els ast.Statement
	if p.match(lexer.ELSE) {
		if els, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	stmt := ast.NewIf(cond, then, els)
	ast.SetSpan(stmt, p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseWhile() (*ast.WhileStatement, error) {
	start := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := ast.NewWhile(cond, body)
	ast.SetSpan(stmt, p.spanFrom(start))
	return stmt, nil
}

// parseCondition reads the parenthesised condition of if and while.
func (p *Parser) parseCondition() (ast.Expression, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}
