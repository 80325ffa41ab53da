package main

import (
	"bufio"
	"fmt"
	"strings"

	"aero/interpreter-go/pkg/ast"
	"aero/interpreter-go/pkg/driver"
	"aero/interpreter-go/pkg/interpreter"
	"aero/interpreter-go/pkg/runtime"
)

const replPrompt = "> "

// runRepl evaluates one line at a time against a single interpreter, so
// bindings persist across lines. Errors are reported and the session
// continues.
func (c *cli) runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(c.stderr, "aero repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}
	loader := driver.NewLoader()
	interp := interpreter.New()
	interp.SetOutput(c.stdout)

	scanner := bufio.NewScanner(c.stdin)
	fmt.Fprint(c.stdout, replPrompt)
	for scanner.Scan() {
		c.evalReplLine(loader, interp, scanner.Text())
		fmt.Fprint(c.stdout, replPrompt)
	}
	fmt.Fprintln(c.stdout)
	if err := scanner.Err(); err != nil {
		c.reportError(err)
		return 1
	}
	return 0
}

func (c *cli) evalReplLine(loader *driver.Loader, interp *interpreter.Interpreter, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	program, err := loader.CompileSource("<repl>", line)
	if err != nil {
		c.reportError(err)
		return
	}
	value, err := interp.EvaluateProgram(program)
	if err != nil {
		c.reportError(err)
		return
	}
	if !endsWithExpression(program) {
		return
	}
	if _, isNil := value.(runtime.NilValue); isNil {
		return
	}
	c.println(runtime.FormatValue(value))
}

func endsWithExpression(program *ast.Program) bool {
	if len(program.Body) == 0 {
		return false
	}
	_, ok := program.Body[len(program.Body)-1].(ast.Expression)
	return ok
}
