package interpreter

import (
	"strings"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/runtime"
)

// valuesEqual compares primitives of the same kind. Values of different
// kinds are never equal.
func valuesEqual(left runtime.Value, right runtime.Value) bool {
	switch lv := left.(type) {
	case runtime.NumberValue:
		rv, ok := right.(runtime.NumberValue)
		return ok && lv.Val.Cmp(rv.Val) == 0
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		return ok && lv.Val == rv.Val
	case runtime.BoolValue:
		rv, ok := right.(runtime.BoolValue)
		return ok && lv.Val == rv.Val
	case runtime.NilValue:
		_, ok := right.(runtime.NilValue)
		return ok
	case runtime.NativeFunctionValue:
		rv, ok := right.(runtime.NativeFunctionValue)
		return ok && lv.Builtin == rv.Builtin
	default:
		return false
	}
}

func evaluateComparison(node *ast.BinaryExpression, op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	var cmp int
	switch lv := left.(type) {
	case runtime.NumberValue:
		rv, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, comparisonError(node, op, left, right)
		}
		cmp = lv.Val.Cmp(rv.Val)
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		if !ok {
			return nil, comparisonError(node, op, left, right)
		}
		cmp = strings.Compare(lv.Val, rv.Val)
	case runtime.BoolValue:
		rv, ok := right.(runtime.BoolValue)
		if !ok {
			return nil, comparisonError(node, op, left, right)
		}
		cmp = boolRank(lv.Val) - boolRank(rv.Val)
	default:
		return nil, comparisonError(node, op, left, right)
	}
	return runtime.BoolValue{Val: comparisonOp(op, cmp)}, nil
}

func comparisonOp(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	default:
		return false
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func comparisonError(node *ast.BinaryExpression, op string, left runtime.Value, right runtime.Value) error {
	return evalErrorf(node, "cannot compare %s and %s with %s", left.Kind(), right.Kind(), op)
}
