package driver

import (
	"errors"
	"fmt"
	"strings"

	"aero/interpreter-go/pkg/interpreter"
	"aero/interpreter-go/pkg/lexer"
	"aero/interpreter-go/pkg/parser"
)

type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// DiagnosticPhase names the pipeline stage that produced a diagnostic.
type DiagnosticPhase string

const (
	PhaseLexer   DiagnosticPhase = "lexer"
	PhaseParser  DiagnosticPhase = "parser"
	PhaseRuntime DiagnosticPhase = "runtime"
	PhaseDriver  DiagnosticPhase = "driver"
)

// DiagnosticLocation references a source position for diagnostics.
type DiagnosticLocation struct {
	Path   string
	Line   int
	Column int
}

// Diagnostic is a located, user-facing error report.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Phase    DiagnosticPhase
	Message  string
	Location DiagnosticLocation
}

// DiagnosticFromError classifies err by the stage that raised it. path is
// the file being compiled or run and may be empty.
func DiagnosticFromError(path string, err error) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityError,
		Phase:    PhaseDriver,
		Location: DiagnosticLocation{Path: path},
	}
	if err == nil {
		return diag
	}
	var lexErr *lexer.Error
	var syntaxErr *parser.SyntaxError
	switch {
	case errors.As(err, &lexErr):
		diag.Phase = PhaseLexer
		diag.Message = lexErr.Message
		diag.Location.Line, diag.Location.Column = lexErr.Line, lexErr.Column
	case errors.As(err, &syntaxErr):
		diag.Phase = PhaseParser
		diag.Message = syntaxErr.Message
		diag.Location.Line, diag.Location.Column = syntaxErr.Line, syntaxErr.Column
	default:
		if runtimeDiag, ok := interpreter.BuildRuntimeDiagnostic(err); ok {
			diag.Phase = PhaseRuntime
			diag.Message = runtimeDiag.Message
			diag.Location.Line = runtimeDiag.Span.Start.Line
			diag.Location.Column = runtimeDiag.Span.Start.Column
			return diag
		}
		// Host errors such as failed reads already name the file.
		message := strings.TrimSpace(err.Error())
		message = strings.TrimSpace(strings.TrimPrefix(message, "driver:"))
		diag.Message = message
		diag.Location = DiagnosticLocation{}
	}
	return diag
}

// Describe formats a diagnostic for CLI output as
// "<phase>: <path>:<line>:<col> <message>".
func Describe(diag Diagnostic) string {
	message := strings.TrimSpace(diag.Message)
	phase := diag.Phase
	if phase == "" {
		phase = PhaseDriver
	}
	prefix := string(phase) + ": "
	if diag.Severity == SeverityWarning {
		prefix = "warning: " + prefix
	}
	location := formatDiagnosticLocation(diag.Location)
	if location != "" {
		return fmt.Sprintf("%s%s %s", prefix, location, message)
	}
	return fmt.Sprintf("%s%s", prefix, message)
}

func formatDiagnosticLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("%d:%d", line, column)
	default:
		return ""
	}
}
