package interpreter

import (
	"io"
	"os"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/runtime"
)

// nativeFunc implements a builtin. node is the call site, used for error
// positions.
type nativeFunc func(i *Interpreter, node *ast.CallExpression, args []runtime.Value) (runtime.Value, error)

// Interpreter evaluates programs against one flat environment. It is not
// safe for concurrent use.
type Interpreter struct {
	env      *runtime.Environment
	builtins map[string]runtime.BuiltinID
	natives  map[runtime.BuiltinID]nativeFunc
	out      io.Writer
}

// New returns an interpreter with an empty environment and the builtin
// table populated. Output goes to os.Stdout until SetOutput is called.
func New() *Interpreter {
	i := &Interpreter{
		env:      runtime.NewEnvironment(),
		builtins: make(map[string]runtime.BuiltinID),
		natives:  make(map[runtime.BuiltinID]nativeFunc),
		out:      os.Stdout,
	}
	i.initBuiltins()
	return i
}

// SetOutput redirects print. A nil writer discards output.
func (i *Interpreter) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	i.out = w
}

// Environment exposes the global bindings.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Lookup resolves name the same way an identifier expression does.
func (i *Interpreter) Lookup(name string) (runtime.Value, bool) {
	if v, ok := i.env.Get(name); ok {
		return v, true
	}
	if id, ok := i.builtins[name]; ok {
		return runtime.NativeFunctionValue{Name: name, Builtin: id}, true
	}
	return nil, false
}

// Execute runs every top-level statement in order. The first error stops
// execution; bindings made before it remain in the environment.
func (i *Interpreter) Execute(program *ast.Program) error {
	_, err := i.EvaluateProgram(program)
	return err
}

// EvaluateProgram runs program and returns the value of its last
// statement, or NilValue when it has none.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	if program == nil {
		return runtime.NilValue{}, nil
	}
	return i.evaluateStatements(program.Body)
}
