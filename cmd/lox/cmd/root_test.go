package cmd

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mliezun/lox/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command line with fresh flag values
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	verbose = false
	noColor = false
	maxDepth = internal.DefaultMaxDepth
	format = "text"

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, ioutil.WriteFile(path, []byte(source), 0644))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exit *ExitError
	require.True(t, errors.As(err, &exit), "expected *ExitError, got %v", err)
	return exit.Code
}

func TestRunFile(t *testing.T) {
	path := writeScript(t, "// arithmetic\n(1 + 2) * 3\n")

	stdout, stderr, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "(* (group (+ 1 2)) 3)\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunFileSyntaxError(t *testing.T) {
	path := writeScript(t, "(1 + 2")

	stdout, stderr, err := run(t, "", path)
	assert.Equal(t, exitDataErr, exitCode(t, err))
	assert.Empty(t, stdout)
	assert.Equal(t, "[line 1] Error at end: Expect ')' after expression.\n", stderr)
}

func TestRunFileLexerErrors(t *testing.T) {
	path := writeScript(t, "1 @\n\"open")

	_, stderr, err := run(t, "", path)
	assert.Equal(t, 65, exitCode(t, err))
	assert.Equal(t, "[line 1] Error: Unexpected character.\n[line 2] Error: Unterminated string.\n", stderr)
}

func TestRunFileMaxDepth(t *testing.T) {
	path := writeScript(t, "---1")

	_, stderr, err := run(t, "", "--max-depth", "2", path)
	assert.Equal(t, exitDataErr, exitCode(t, err))
	assert.Contains(t, stderr, "Expression nesting too deep.")
}

func TestRunStdin(t *testing.T) {
	stdout, _, err := run(t, "!true == false", "-")
	require.NoError(t, err)
	assert.Equal(t, "(== (! true) false)\n", stdout)
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := run(t, "", filepath.Join(t.TempDir(), "missing.lox"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestRunUsage(t *testing.T) {
	_, stderr, err := run(t, "", "a.lox", "b.lox")
	assert.Equal(t, exitUsage, exitCode(t, err))
	assert.Equal(t, "Usage: lox [script]\n", stderr)
}

func TestRunPrompt(t *testing.T) {
	stdout, stderr, err := run(t, "1 + 2\n(1\n-3\n")
	require.NoError(t, err)

	// A bad line does not fail the lines after it
	assert.Equal(t, "> (+ 1 2)\n> > (- 3)\n> \n", stdout)
	assert.Equal(t, "[line 1] Error at end: Expect ')' after expression.\n", stderr)
}

func TestTokens(t *testing.T) {
	path := writeScript(t, "(1 + \"a\")\n")

	stdout, stderr, err := run(t, "", "tokens", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, strings.Join([]string{
		"LEFT_PAREN ( null",
		"NUMBER 1 1",
		"PLUS + null",
		"STRING \"a\" a",
		"RIGHT_PAREN ) null",
		"EOF  null",
		"",
	}, "\n"), stdout)
}

func TestTokensYAML(t *testing.T) {
	stdout, _, err := run(t, "-2.5\n", "tokens", "--format", "yaml")
	require.NoError(t, err)

	var records []tokenRecord
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 3)
	assert.Equal(t, tokenRecord{Type: "MINUS", Lexeme: "-", Line: 1}, records[0])
	assert.Equal(t, "NUMBER", records[1].Type)
	assert.Equal(t, 2.5, records[1].Literal)
	assert.Equal(t, tokenRecord{Type: "EOF", Lexeme: "", Line: 2}, records[2])
}

func TestTokensErrors(t *testing.T) {
	stdout, stderr, err := run(t, "1 $", "tokens")
	assert.Equal(t, exitDataErr, exitCode(t, err))
	assert.Equal(t, "NUMBER 1 1\nEOF  null\n", stdout)
	assert.Equal(t, "[line 1] Error: Unexpected character.\n", stderr)
}

func TestTokensUnknownFormat(t *testing.T) {
	_, _, err := run(t, "1", "tokens", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
