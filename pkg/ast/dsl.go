package ast

import "math/big"

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int64) *NumberLiteral {
	return NewNumber(big.NewInt(value))
}

func IntBig(value *big.Int) *NumberLiteral {
	return NewNumber(new(big.Int).Set(value))
}

func Str(value string) *StringLiteral {
	return NewString(value)
}

func Bool(value bool) *BoolLiteral {
	return NewBool(value)
}

// Expression helpers.

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryOp(op, left, right)
}

func Call(callee Expression, args ...Expression) *CallExpression {
	if args == nil {
		args = []Expression{}
	}
	return NewCall(callee, args)
}

func CallNamed(name string, args ...Expression) *CallExpression {
	return Call(ID(name), args...)
}

// Statement helpers.

func Prog(body ...Statement) *Program {
	if body == nil {
		body = []Statement{}
	}
	return NewProgram(body)
}

func Block(body ...Statement) *BlockStatement {
	if body == nil {
		body = []Statement{}
	}
	return NewBlock(body)
}

func Assign(name string, value Expression) *AssignStatement {
	return NewAssign(name, value)
}

func If(condition Expression, then Statement, els Statement) *IfStatement {
	return NewIf(condition, then, els)
}

func While(condition Expression, body Statement) *WhileStatement {
	return NewWhile(condition, body)
}
