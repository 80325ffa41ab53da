package runtime

import (
	"fmt"
	"strconv"
)

// FormatValue renders a value the way print and string concatenation see
// it.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case NumberValue:
		if val.Val == nil {
			return "0"
		}
		return val.Val.String()
	case StringValue:
		return val.Val
	case BoolValue:
		return strconv.FormatBool(val.Val)
	case NilValue:
		return "nil"
	case NativeFunctionValue:
		return "<builtin " + val.Name + ">"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// Truthy reports how a value behaves as a condition. Numbers are true when
// non-zero, strings when non-empty, nil is false and builtins are true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case BoolValue:
		return val.Val
	case NumberValue:
		return val.Val != nil && val.Val.Sign() != 0
	case StringValue:
		return val.Val != ""
	case NilValue, nil:
		return false
	case NativeFunctionValue:
		return true
	default:
		return true
	}
}
