package interpreter

import (
	"math/big"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/runtime"
)

// applyBinaryOperator combines two already evaluated operands.
func applyBinaryOperator(node *ast.BinaryExpression, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	op := node.Operator
	switch op {
	case "+":
		if isStringValue(left) || isStringValue(right) {
			return runtime.StringValue{Val: runtime.FormatValue(left) + runtime.FormatValue(right)}, nil
		}
		return evaluateArithmetic(node, op, left, right)
	case "-", "*", "/", "%":
		return evaluateArithmetic(node, op, left, right)
	case "==":
		return runtime.BoolValue{Val: valuesEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return evaluateComparison(node, op, left, right)
	case "&&":
		return runtime.BoolValue{Val: runtime.Truthy(left) && runtime.Truthy(right)}, nil
	case "||":
		return runtime.BoolValue{Val: runtime.Truthy(left) || runtime.Truthy(right)}, nil
	default:
		return nil, evalErrorf(node, "unsupported operator %s", op)
	}
}

func evaluateArithmetic(node *ast.BinaryExpression, op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	ln, lok := left.(runtime.NumberValue)
	rn, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, evalErrorf(node, "operator %s requires numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	result := new(big.Int)
	switch op {
	case "+":
		result.Add(ln.Val, rn.Val)
	case "-":
		result.Sub(ln.Val, rn.Val)
	case "*":
		result.Mul(ln.Val, rn.Val)
	case "/", "%":
		if rn.Val.Sign() == 0 {
			return nil, evalErrorf(node, "division by zero")
		}
		quotient, remainder := floorDivModBig(ln.Val, rn.Val)
		if op == "/" {
			result = quotient
		} else {
			result = remainder
		}
	}
	return runtime.NumberValue{Val: result}, nil
}

// floorDivModBig rounds the quotient toward negative infinity, so the
// remainder takes the sign of the divisor. divisor must be non-zero.
func floorDivModBig(dividend *big.Int, divisor *big.Int) (*big.Int, *big.Int) {
	quotient := new(big.Int).Quo(dividend, divisor)
	remainder := new(big.Int).Rem(dividend, divisor)
	if remainder.Sign() != 0 && remainder.Sign() != divisor.Sign() {
		quotient.Sub(quotient, big.NewInt(1))
		remainder.Add(remainder, divisor)
	}
	return quotient, remainder
}

func isStringValue(v runtime.Value) bool {
	_, ok := v.(runtime.StringValue)
	return ok
}
