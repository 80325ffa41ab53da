package interpreter

import (
	"io"
	"strings"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/runtime"
)

func (i *Interpreter) initBuiltins() {
	i.registerBuiltin("print", runtime.BuiltinPrint, builtinPrint)
}

func (i *Interpreter) registerBuiltin(name string, id runtime.BuiltinID, impl nativeFunc) {
	i.builtins[name] = id
	i.natives[id] = impl
}

func (i *Interpreter) callNative(node *ast.CallExpression, fn runtime.NativeFunctionValue, args []runtime.Value) (runtime.Value, error) {
	impl, ok := i.natives[fn.Builtin]
	if !ok {
		return nil, evalErrorf(node, "unknown builtin %s", fn.Builtin)
	}
	return impl(i, node, args)
}

type flusher interface {
	Flush() error
}

// flushOutput pushes buffered output through, for writers such as
// bufio.Writer that hold it back.
func flushOutput(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func builtinPrint(i *Interpreter, node *ast.CallExpression, args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, len(args))
	for idx, arg := range args {
		parts[idx] = runtime.FormatValue(arg)
	}
	line := strings.Join(parts, " ") + "\n"
	if _, err := io.WriteString(i.out, line); err != nil {
		return nil, &EvaluationError{Message: "print failed", Span: node.Span(), Cause: err}
	}
	if err := flushOutput(i.out); err != nil {
		return nil, &EvaluationError{Message: "print failed", Span: node.Span(), Cause: err}
	}
	return runtime.NilValue{}, nil
}
