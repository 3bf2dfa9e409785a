package internal

import (
	"github.com/mliezun/lox/internal/tokens"
)

// DefaultMaxDepth bounds how deeply unary operators and groupings may nest
const DefaultMaxDepth = 256

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithMaxDepth sets the nesting limit. Values below 1 keep the default.
func WithMaxDepth(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser builds a syntax tree out of a token sequence by recursive descent.
type Parser struct {
	tokens  []tokens.Token
	current int

	depth    int
	maxDepth int

	reporter Reporter
	err      *Error
}

// NewParser creates a parser over toks that reports errors to r. A
// sequence that does not end in EOF gets one appended.
func NewParser(toks []tokens.Token, r Reporter, opts ...ParserOption) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Type != tokens.EOF {
		line := 1
		if len(toks) != 0 {
			line = toks[len(toks)-1].Line
		}
		toks = append(toks[:len(toks):len(toks)], tokens.Token{Type: tokens.EOF, Line: line})
	}
	p := &Parser{
		tokens:   toks,
		maxDepth: DefaultMaxDepth,
		reporter: r,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is a shorthand for NewParser(toks, r, opts...).Parse()
func Parse(toks []tokens.Token, r Reporter, opts ...ParserOption) (Expr, error) {
	return NewParser(toks, r, opts...).Parse()
}

// Parse parses exactly one expression. On failure the tree is nil and the
// error is the first *Error reported. After a failure the parser
// synchronizes and keeps going so later errors are reported too.
func (p *Parser) Parse() (Expr, error) {
	root := p.parseExpr()
	if root != nil && !p.isAtEnd() {
		p.setError(UnexpectedToken, p.peek(), msgExpectedEnd)
	}
	for !p.isAtEnd() {
		p.synchronize()
		if !p.isAtEnd() {
			p.parseExpr()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return root, nil
}

func (p *Parser) parseExpr() (e Expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Error); !ok {
				panic(r)
			}
			e = nil
		}
	}()
	p.depth = 0
	return p.expression()
}

func (p *Parser) expression() Expr {
	return p.equality()
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(tokens.BANG_EQUAL, tokens.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(tokens.GREATER, tokens.GREATER_EQUAL, tokens.LESS, tokens.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(tokens.MINUS, tokens.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(tokens.SLASH, tokens.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *Parser) unary() Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.fatalError(NestingTooDeep, p.peek(), msgNestingTooDeep)
	}

	if p.match(tokens.BANG, tokens.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &Unary{
			Operator: operator,
			Right:    right,
		}
	}
	return p.primary()
}

func (p *Parser) primary() Expr {
	if p.match(tokens.FALSE) {
		return &Literal{Value: false}
	}
	if p.match(tokens.TRUE) {
		return &Literal{Value: true}
	}
	if p.match(tokens.NIL) {
		return &Literal{Value: nil}
	}
	if p.match(tokens.NUMBER, tokens.STRING) {
		return &Literal{Value: p.previous().Literal}
	}
	if p.match(tokens.LEFT_PAREN) {
		expr := p.expression()
		p.consume(tokens.RIGHT_PAREN, msgUnclosedParen)
		return &Grouping{Expression: expr}
	}

	p.fatalError(UnexpectedToken, p.peek(), msgExpectedExpr)
	return nil
}

func (p *Parser) consume(tk tokens.TokenType, message string) tokens.Token {
	if p.check(tk) {
		return p.advance()
	}

	p.fatalError(ExpectedToken, p.peek(), message)
	return tokens.Token{}
}

func (p *Parser) advance() tokens.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(types ...tokens.TokenType) bool {
	for _, tk := range types {
		if p.check(tk) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tk tokens.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tk
}

func (p *Parser) peek() tokens.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == tokens.EOF
}

// setError reports a syntax error at tok without unwinding
func (p *Parser) setError(kind ErrorKind, tok tokens.Token, message string) *Error {
	err := &Error{
		Kind:    kind,
		Line:    tok.Line,
		Where:   location(tok),
		Message: message,
		Token:   &tok,
	}
	report(p.reporter, err)
	if p.err == nil {
		p.err = err
	}
	return err
}

// fatalError reports a syntax error and unwinds to the enclosing parseExpr
func (p *Parser) fatalError(kind ErrorKind, tok tokens.Token, message string) {
	panic(p.setError(kind, tok, message))
}

// synchronize discards tokens until the next statement boundary
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == tokens.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case tokens.CLASS, tokens.FUN, tokens.VAR, tokens.FOR,
			tokens.IF, tokens.WHILE, tokens.PRINT, tokens.RETURN:
			return
		}

		p.advance()
	}
}
