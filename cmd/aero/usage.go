package main

import (
	"fmt"

	"github.com/fatih/color"

	"aero/interpreter-go/pkg/driver"
)

func (c *cli) printUsage() {
	fmt.Fprintln(c.stderr, "Usage:")
	fmt.Fprintln(c.stderr, "  aero [-v] [-n] <file.aero>")
	fmt.Fprintln(c.stderr, "  aero [-v] [-n] run [file.aero|target]")
	fmt.Fprintln(c.stderr, "  aero [-v] [-n] check <file.aero>")
	fmt.Fprintln(c.stderr, "  aero tokens <file.aero>")
	fmt.Fprintln(c.stderr, "  aero ast <file.aero>")
	fmt.Fprintln(c.stderr, "  aero repl")
	fmt.Fprintln(c.stderr, "Flags:")
	fmt.Fprintln(c.stderr, "  -h  show this help")
	fmt.Fprintln(c.stderr, "  -V  print the version")
	fmt.Fprintln(c.stderr, "  -v  log pipeline phases to stderr")
	fmt.Fprintln(c.stderr, "  -n  disable coloured output")
}

func (c *cli) println(args ...any) {
	fmt.Fprintln(c.stdout, args...)
}

var errorLabel = color.New(color.FgRed, color.Bold)

// reportDiagnostic prints a diagnostic with a coloured error prefix.
func (c *cli) reportDiagnostic(diag driver.Diagnostic) {
	label := "error:"
	if diag.Severity == driver.SeverityWarning {
		label = "warning:"
	}
	fmt.Fprintf(c.stderr, "%s %s\n", errorLabel.Sprint(label), driver.Describe(diag))
}

func (c *cli) reportError(err error) {
	c.reportDiagnostic(driver.DiagnosticFromError("", err))
}

func (c *cli) reportErrorAt(path string, err error) {
	c.reportDiagnostic(driver.DiagnosticFromError(path, err))
}
