package ast

import (
	"fmt"
	"strings"
)

// Render prints a node back as Aero source. Nested binary operands are
// parenthesised, so the output reparses to the same tree.
func Render(node Node) string {
	var b strings.Builder
	render(&b, node)
	return b.String()
}

func render(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		return
	case *Program:
		for i, stmt := range n.Body {
			if i > 0 {
				b.WriteString("; ")
			}
			render(b, stmt)
		}
	case *BlockStatement:
		b.WriteString("{")
		for i, stmt := range n.Body {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(" ")
			render(b, stmt)
		}
		b.WriteString(" }")
	case *AssignStatement:
		b.WriteString(n.Name)
		b.WriteString(" = ")
		render(b, n.Value)
	case *IfStatement:
		b.WriteString("if (")
		render(b, n.Condition)
		b.WriteString(") ")
		render(b, n.Then)
		if n.Else != nil {
			b.WriteString(" else ")
			render(b, n.Else)
		}
	case *WhileStatement:
		b.WriteString("while (")
		render(b, n.Condition)
		b.WriteString(") ")
		render(b, n.Body)
	case *BinaryExpression:
		renderOperand(b, n.Left)
		fmt.Fprintf(b, " %s ", n.Operator)
		renderOperand(b, n.Right)
	case *CallExpression:
		renderOperand(b, n.Callee)
		b.WriteString("(")
		for i, arg := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, arg)
		}
		b.WriteString(")")
	case *Identifier:
		b.WriteString(n.Name)
	case *NumberLiteral:
		if n.Value == nil {
			b.WriteString("0")
			return
		}
		b.WriteString(n.Value.String())
	case *StringLiteral:
		b.WriteString(`"`)
		b.WriteString(n.Value)
		b.WriteString(`"`)
	case *BoolLiteral:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func renderOperand(b *strings.Builder, expr Expression) {
	if _, ok := expr.(*BinaryExpression); ok {
		b.WriteString("(")
		render(b, expr)
		b.WriteString(")")
		return
	}
	render(b, expr)
}
