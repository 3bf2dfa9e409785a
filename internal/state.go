package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/gommon/color"
	"github.com/mliezun/lox/internal/tokens"
	"github.com/sirupsen/logrus"
)

// ErrorKind classifies a reported error
type ErrorKind int

const (
	// Lexer errors
	UnexpectedCharacter ErrorKind = iota + 1
	UnterminatedString

	// Parser errors
	ExpectedToken
	UnexpectedToken
	NestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case ExpectedToken:
		return "ExpectedToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case NestingTooDeep:
		return "NestingTooDeep"
	}
	return "Unknown"
}

// Lexical reports a lexer error kind
func (k ErrorKind) Lexical() bool {
	return k == UnexpectedCharacter || k == UnterminatedString
}

// Lexer errors
const (
	msgUnexpectedChar  = "Unexpected character."
	msgUnterminatedStr = "Unterminated string."
)

// Parser errors
const (
	msgUnclosedParen  = "Expect ')' after expression."
	msgExpectedExpr   = "Expect expression."
	msgExpectedEnd    = "Expect end of expression."
	msgNestingTooDeep = "Expression nesting too deep."
)

// Error is a single lexical or syntax error. Token is set for syntax errors.
type Error struct {
	Kind    ErrorKind
	Line    int
	Where   string
	Message string
	Token   *tokens.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// Reporter receives every error found by the lexer and the parser.
type Reporter interface {
	Report(line int, where, message string)
}

// ErrorReporter is implemented by reporters that want the full error value
// instead of its rendered parts.
type ErrorReporter interface {
	Reporter
	ReportError(err *Error)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(line int, where, message string)

// Report calls f(line, where, message).
func (f ReporterFunc) Report(line int, where, message string) {
	f(line, where, message)
}

func report(r Reporter, err *Error) {
	if r == nil {
		return
	}
	if er, ok := r.(ErrorReporter); ok {
		er.ReportError(err)
		return
	}
	r.Report(err.Line, err.Where, err.Message)
}

// location renders where a syntax error happened relative to tok
func location(tok tokens.Token) string {
	if tok.Type == tokens.EOF {
		return " at end"
	}
	return " at '" + tok.Lexeme + "'"
}

// Diagnostics accumulates the errors of one run. It replaces a process-wide
// "had error" flag: callers read HadError after the run and Reset it between
// independent inputs.
type Diagnostics struct {
	errors  []*Error
	log     *logrus.Entry
	noColor bool
}

// NewDiagnostics creates an empty accumulator logging through logger. A nil
// logger gets a default one at warning level.
func NewDiagnostics(logger *logrus.Logger) *Diagnostics {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Diagnostics{
		errors: make([]*Error, 0),
		log:    logger.WithField("component", "diagnostics"),
	}
}

// Report implements Reporter for callers without a kind
func (d *Diagnostics) Report(line int, where, message string) {
	d.ReportError(&Error{Line: line, Where: where, Message: message})
}

// ReportError implements ErrorReporter
func (d *Diagnostics) ReportError(err *Error) {
	d.log.WithFields(logrus.Fields{
		"line": err.Line,
		"kind": err.Kind,
	}).Debug(err.Message)
	d.errors = append(d.errors, err)
}

// HadError returns true if anything was reported since the last Reset
func (d *Diagnostics) HadError() bool {
	return len(d.errors) != 0
}

// Errors returns the reported errors in report order
func (d *Diagnostics) Errors() []*Error {
	return d.errors
}

// Err returns every reported error as one error, or nil.
func (d *Diagnostics) Err() error {
	var result *multierror.Error
	for _, e := range d.errors {
		result = multierror.Append(result, e)
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = joinErrors
	return result.ErrorOrNil()
}

func joinErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Reset clears the accumulated errors
func (d *Diagnostics) Reset() {
	d.errors = make([]*Error, 0)
}

// SetColor enables or disables colored output in PrintErrors
func (d *Diagnostics) SetColor(enabled bool) {
	d.noColor = !enabled
}

// PrintErrors prints all errors to w and returns true if there were any
func (d *Diagnostics) PrintErrors(w io.Writer) bool {
	c := color.New()
	c.SetOutput(w)
	if d.noColor {
		c.Disable()
	}
	for _, e := range d.errors {
		fmt.Fprintf(w, "[line %d] %s%s: %s\n", e.Line, c.Red("Error"), e.Where, e.Message)
	}
	return d.HadError()
}
