package cmd

import (
	"fmt"

	"github.com/mliezun/lox/internal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var format string

var tokensCmd = &cobra.Command{
	Use:   "tokens [script]",
	Short: "Print the tokens of a script",
	Long: `Scans a script (or stdin when the path is - or missing) and prints one
token per line as TYPE lexeme literal, or a YAML list with --format yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")
	rootCmd.AddCommand(tokensCmd)
}

type tokenRecord struct {
	Type    string      `yaml:"type"`
	Lexeme  string      `yaml:"lexeme"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	diagnostics := newDiagnostics()
	toks := internal.Scan(source, diagnostics)

	out := cmd.OutOrStdout()
	if format == "yaml" {
		records := make([]tokenRecord, 0, len(toks))
		for _, tok := range toks {
			records = append(records, tokenRecord{
				Type:    tok.Type.String(),
				Lexeme:  tok.Lexeme,
				Literal: tok.Literal,
				Line:    tok.Line,
			})
		}
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(records); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		for _, tok := range toks {
			fmt.Fprintln(out, tok)
		}
	}

	if diagnostics.PrintErrors(cmd.ErrOrStderr()) {
		return &ExitError{Code: exitDataErr}
	}
	return nil
}
