// Package runtime defines the values an Aero program computes with and the
// flat environment that binds them to names.
package runtime

import (
	"fmt"
	"math/big"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// NumberValue holds an arbitrary precision integer. Val is never mutated
// once the value is built.
type NumberValue struct {
	Val *big.Int
}

func (v NumberValue) Kind() Kind { return KindNumber }

// NewNumber wraps a copy of n.
func NewNumber(n *big.Int) NumberValue {
	if n == nil {
		return NumberValue{Val: new(big.Int)}
	}
	return NumberValue{Val: new(big.Int).Set(n)}
}

// NumberFromInt64 is a convenience for small constants.
func NumberFromInt64(n int64) NumberValue {
	return NumberValue{Val: big.NewInt(n)}
}

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NilValue is the unit result of print and of statements that produce
// nothing.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// BuiltinID tags a host-provided function. The interpreter owns the table
// that maps ids to implementations.
type BuiltinID int

const (
	BuiltinPrint BuiltinID = iota + 1
)

func (id BuiltinID) String() string {
	switch id {
	case BuiltinPrint:
		return "print"
	default:
		return fmt.Sprintf("builtin_%d", int(id))
	}
}

// NativeFunctionValue refers to a builtin by id.
type NativeFunctionValue struct {
	Name    string
	Builtin BuiltinID
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }
