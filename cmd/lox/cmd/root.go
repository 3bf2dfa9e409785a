package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mliezun/lox/internal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit statuses, from sysexits.h
const (
	exitUsage   = 64
	exitDataErr = 65
)

// ExitError carries a process exit status out of a command
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var (
	verbose  bool
	noColor  bool
	maxDepth int
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox expression front end",
	Long: `lox scans and parses a single Lox expression and prints its syntax tree.

With a script path (or - for stdin) the file is parsed once and any error
exits with status 65. Without arguments an interactive prompt reads one
expression per line.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the command line
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", internal.DefaultMaxDepth, "Maximum expression nesting depth")
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return runPrompt(cmd)
	case 1:
		return runFile(cmd, args[0])
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Usage: lox [script]")
	return &ExitError{Code: exitUsage}
}

func runFile(cmd *cobra.Command, path string) error {
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	diagnostics := newDiagnostics()
	expr, _, err := internal.RunSource(source, diagnostics, parserOptions()...)
	if err != nil {
		diagnostics.PrintErrors(cmd.ErrOrStderr())
		return &ExitError{Code: exitDataErr}
	}

	fmt.Fprintln(cmd.OutOrStdout(), internal.PrintTree(expr))
	return nil
}

func runPrompt(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	diagnostics := newDiagnostics()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		expr, _, err := internal.RunSource(scanner.Text(), diagnostics, parserOptions()...)
		if err != nil {
			diagnostics.PrintErrors(cmd.ErrOrStderr())
		} else {
			fmt.Fprintln(out, internal.PrintTree(expr))
		}
		// One bad line must not fail the next one
		diagnostics.Reset()
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func readSource(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		file, err := os.Open(absPath)
		if err != nil {
			return "", err
		}
		defer file.Close()
		r = file
	}

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newDiagnostics() *internal.Diagnostics {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	d := internal.NewDiagnostics(logger)
	d.SetColor(!noColor)
	return d
}

func parserOptions() []internal.ParserOption {
	return []internal.ParserOption{internal.WithMaxDepth(maxDepth)}
}
