package interpreter

import (
	"fmt"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NewNumber(n.Value), nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BoolLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.Identifier:
		if v, ok := i.Lookup(n.Name); ok {
			return v, nil
		}
		return nil, &NameError{Name: n.Name, Span: n.Span()}
	case *ast.BinaryExpression:
		left, err := i.evaluateExpression(n.Left)
		if err != nil {
			return nil, err
		}
		// Both operands are evaluated even for && and ||.
		right, err := i.evaluateExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return applyBinaryOperator(n, left, right)
	case *ast.CallExpression:
		return i.evaluateCall(n)
	case nil:
		return runtime.NilValue{}, nil
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

// evaluateCall checks the callee before touching the arguments, so a call
// on a non-function has no argument side effects.
func (i *Interpreter) evaluateCall(n *ast.CallExpression) (runtime.Value, error) {
	callee, err := i.evaluateExpression(n.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(runtime.NativeFunctionValue)
	if !ok {
		return nil, evalErrorf(n, "%s is not callable", ast.Render(n.Callee))
	}
	args := make([]runtime.Value, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		val, err := i.evaluateExpression(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return i.callNative(n, fn, args)
}
