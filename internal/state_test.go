package internal

import (
	"bytes"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/mliezun/lox/internal/tokens"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiagnostics() (*Diagnostics, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(ioutil.Discard)
	d := NewDiagnostics(logger)
	d.SetColor(false)
	return d, hook
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: UnexpectedCharacter, Line: 4, Message: "Unexpected character."}
	assert.Equal(t, "[line 4] Error: Unexpected character.", err.Error())

	err = &Error{Kind: ExpectedToken, Line: 1, Where: " at end", Message: "Expect ')' after expression."}
	assert.Equal(t, "[line 1] Error at end: Expect ')' after expression.", err.Error())
}

func TestErrorKind(t *testing.T) {
	assert.True(t, UnexpectedCharacter.Lexical())
	assert.True(t, UnterminatedString.Lexical())
	assert.False(t, ExpectedToken.Lexical())
	assert.False(t, UnexpectedToken.Lexical())
	assert.False(t, NestingTooDeep.Lexical())

	assert.Equal(t, "UnterminatedString", UnterminatedString.String())
	assert.Equal(t, "NestingTooDeep", NestingTooDeep.String())
	assert.Equal(t, "Unknown", ErrorKind(0).String())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, " at end", location(tokens.Token{Type: tokens.EOF}))
	assert.Equal(t, " at 'foo'", location(tokens.Token{Type: tokens.IDENTIFIER, Lexeme: "foo"}))
}

func TestDiagnostics(t *testing.T) {
	d, hook := newTestDiagnostics()
	assert.False(t, d.HadError())
	assert.NoError(t, d.Err())

	Scan("@", d)
	d.Report(7, " at 'x'", "Custom.")

	require.True(t, d.HadError())
	require.Len(t, d.Errors(), 2)
	assert.Equal(t, UnexpectedCharacter, d.Errors()[0].Kind)
	assert.Equal(t, ErrorKind(0), d.Errors()[1].Kind)

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t, "[line 1] Error: Unexpected character.\n[line 7] Error at 'x': Custom.", err.Error())

	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, UnexpectedCharacter, lexErr.Kind)

	require.Len(t, hook.AllEntries(), 2)
	entry := hook.AllEntries()[0]
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "Unexpected character.", entry.Message)
	assert.Equal(t, 1, entry.Data["line"])
	assert.Equal(t, UnexpectedCharacter, entry.Data["kind"])

	held := d.Errors()
	d.Reset()
	assert.False(t, d.HadError())
	assert.NoError(t, d.Err())
	assert.Len(t, held, 2)
}

func TestDiagnosticsPrintErrors(t *testing.T) {
	d, _ := newTestDiagnostics()

	var buf bytes.Buffer
	assert.False(t, d.PrintErrors(&buf))
	assert.Empty(t, buf.String())

	_, err := Parse(Scan("(1", d), d)
	require.Error(t, err)

	assert.True(t, d.PrintErrors(&buf))
	assert.Equal(t, "[line 1] Error at end: Expect ')' after expression.\n", buf.String())
}

func TestNewDiagnosticsDefaultLogger(t *testing.T) {
	d := NewDiagnostics(nil)
	d.Report(1, "", "message")
	assert.True(t, d.HadError())
}
