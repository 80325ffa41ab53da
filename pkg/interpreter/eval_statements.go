package interpreter

import (
	"fmt"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatements(body []ast.Statement) (runtime.Value, error) {
	var result runtime.Value = runtime.NilValue{}
	for _, stmt := range body {
		val, err := i.evaluateStatement(stmt)
		if err != nil {
			return nil, attachRuntimeContext(err, stmt)
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) evaluateStatement(node ast.Statement) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.AssignStatement:
		return i.evaluateAssign(n)
	case *ast.IfStatement:
		return i.evaluateIf(n)
	case *ast.WhileStatement:
		return i.evaluateWhile(n)
	case *ast.BlockStatement:
		return i.evaluateStatements(n.Body)
	case ast.Expression:
		return i.evaluateExpression(n)
	case nil:
		return runtime.NilValue{}, nil
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateAssign(n *ast.AssignStatement) (runtime.Value, error) {
	val, err := i.evaluateExpression(n.Value)
	if err != nil {
		return nil, err
	}
	i.env.Set(n.Name, val)
	return val, nil
}

func (i *Interpreter) evaluateIf(n *ast.IfStatement) (runtime.Value, error) {
	cond, err := i.evaluateExpression(n.Condition)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(cond) {
		return i.evaluateStatement(n.Then)
	}
	if n.Else != nil {
		return i.evaluateStatement(n.Else)
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateWhile(n *ast.WhileStatement) (runtime.Value, error) {
	for {
		cond, err := i.evaluateExpression(n.Condition)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(cond) {
			return runtime.NilValue{}, nil
		}
		if _, err := i.evaluateStatement(n.Body); err != nil {
			return nil, err
		}
	}
}
