package internal

import (
	"strconv"
	"unicode/utf8"

	"github.com/mliezun/lox/internal/tokens"
)

// Lexer converts source text into tokens in a single left-to-right pass.
type Lexer struct {
	source    string
	start     int
	current   int
	line      int
	startLine int
	done      bool

	tokens   []tokens.Token
	reporter Reporter
}

// NewLexer creates a lexer over source that reports errors to r
func NewLexer(source string, r Reporter) *Lexer {
	return &Lexer{
		source:   source,
		line:     1,
		reporter: r,
	}
}

// Scan is a shorthand for NewLexer(source, r).Scan()
func Scan(source string, r Reporter) []tokens.Token {
	return NewLexer(source, r).Scan()
}

// Scan consumes the whole source and returns its tokens. The result always
// ends with exactly one EOF token, even when errors were reported.
func (l *Lexer) Scan() []tokens.Token {
	if l.done {
		return l.tokens
	}
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.scanToken()
	}
	l.tokens = append(l.tokens, tokens.Token{
		Type: tokens.EOF,
		Line: l.line,
	})
	l.done = true
	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, nil)
	case ')':
		l.emit(tokens.RIGHT_PAREN, nil)
	case '{':
		l.emit(tokens.LEFT_BRACE, nil)
	case '}':
		l.emit(tokens.RIGHT_BRACE, nil)
	case ',':
		l.emit(tokens.COMMA, nil)
	case '.':
		l.emit(tokens.DOT, nil)
	case '-':
		l.emit(tokens.MINUS, nil)
	case '+':
		l.emit(tokens.PLUS, nil)
	case ';':
		l.emit(tokens.SEMICOLON, nil)
	case '*':
		l.emit(tokens.STAR, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tokens.SLASH, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tokens.BANG_EQUAL, nil)
		} else {
			l.emit(tokens.BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tokens.EQUAL_EQUAL, nil)
		} else {
			l.emit(tokens.EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tokens.LESS_EQUAL, nil)
		} else {
			l.emit(tokens.LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tokens.GREATER_EQUAL, nil)
		} else {
			l.emit(tokens.GREATER, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			// Swallow the whole code point so one character is one error
			if c >= utf8.RuneSelf {
				_, size := utf8.DecodeRuneInString(l.source[l.start:])
				l.current = l.start + size
			}
			l.error(UnexpectedCharacter, msgUnexpectedChar)
		}
	}
}

func (l *Lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.error(UnterminatedString, msgUnterminatedStr)
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tokens.STRING, l.source[l.start+1:l.current-1])
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// Only digits and one dot reach here
	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(tokens.NUMBER, literal)
}

func (l *Lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	tokenType, ok := tokens.Keyword(l.source[l.start:l.current])
	if !ok {
		tokenType = tokens.IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *Lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *Lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) emit(token tokens.TokenType, literal interface{}) {
	l.tokens = append(l.tokens, tokens.Token{
		Type:    token,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.startLine,
	})
}

func (l *Lexer) error(kind ErrorKind, message string) {
	report(l.reporter, &Error{
		Kind:    kind,
		Line:    l.line,
		Message: message,
	})
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
