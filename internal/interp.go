package internal

import (
	"github.com/mliezun/lox/internal/tokens"
	"github.com/sirupsen/logrus"
)

//go:generate go run ../cmd/ast Expr expr.go

// RunSource scans and parses source with a fresh lexer and parser, reporting
// into d. The parser does not run when the lexer reported errors. The tree is
// nil whenever an error was reported during this run.
func RunSource(source string, d *Diagnostics, opts ...ParserOption) (Expr, []tokens.Token, error) {
	before := len(d.Errors())

	toks := Scan(source, d)
	d.log.WithFields(logrus.Fields{
		"tokens": len(toks),
		"errors": len(d.Errors()) - before,
	}).Debug("scanned")

	if len(d.Errors()) != before {
		return nil, toks, d.Err()
	}

	expr, err := Parse(toks, d, opts...)
	if err != nil {
		return nil, toks, d.Err()
	}
	d.log.Debug("parsed")

	return expr, toks, nil
}
