package lexer

import (
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"

	cerr "github.com/barun-bash/cfront/internal/errors"
)

// Lexer converts source text into tokens on demand. A Lexer is a
// single-use cursor: once it has returned TOKEN_EOF every further call to
// Next returns TOKEN_EOF again.
type Lexer struct {
	source   string // the full source text
	keywords Keywords
	diags    *cerr.Diagnostics
	logger   *slog.Logger

	start   int // byte offset of current token start
	current int // byte offset of current position
	line    int // current line number (1-based)
	column  int // current column number (1-based)

	tokLine   int // position of the token being scanned
	tokColumn int
	done      bool
}

// New creates a Lexer for source. Keyword classification uses keywords;
// a nil table means DefaultKeywords. Lexical diagnostics go to diags,
// which may be shared with a parser; nil allocates a private collector.
func New(source string, keywords Keywords, diags *cerr.Diagnostics) *Lexer {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	if diags == nil {
		diags = cerr.New("")
	}
	return &Lexer{
		source:   source,
		keywords: keywords,
		diags:    diags,
		logger:   slog.New(slog.DiscardHandler),
		line:     1,
		column:   1,
	}
}

// WithLogger sets the logger used for debug output. Nil disables logging.
func (l *Lexer) WithLogger(logger *slog.Logger) *Lexer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l.logger = logger
	return l
}

// Diagnostics returns the collector the lexer reports into.
func (l *Lexer) Diagnostics() *cerr.Diagnostics {
	return l.diags
}

// Tokenize is the eager form of the lexer: it scans the whole source and
// returns the token sequence, always terminated by TOKEN_EOF, together
// with any lexical diagnostics in source order.
func Tokenize(source string, keywords Keywords) ([]Token, []*cerr.Diagnostic) {
	l := New(source, keywords, nil)
	tokens := l.Tokenize()
	return tokens, l.diags.All()
}

// Tokenize drains the lexer and returns every remaining token. The
// result always ends with TOKEN_EOF.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, len(l.source)/3+1)
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens
		}
	}
}

// Next scans and returns the next token. Whitespace, newlines, comments and
// illegal characters are consumed without producing a token.
func (l *Lexer) Next() Token {
	for !l.done {
		l.skipTrivia()
		l.start = l.current
		l.tokLine, l.tokColumn = l.line, l.column

		if l.isAtEnd() {
			l.done = true
			break
		}
		if tok, ok := l.scanToken(); ok {
			return tok
		}
	}
	return Token{Type: TOKEN_EOF, Line: l.line, Column: l.column}
}

// skipTrivia consumes whitespace, newlines and // comments.
func (l *Lexer) skipTrivia() {
	for !l.isAtEnd() {
		switch r := l.peekRune(); {
		case r == ' ' || r == '\t' || r == '\r':
			l.advance()
		case r == '\n':
			l.advance()
			l.line++
			l.column = 1
		case r == '/' && l.peekRuneAt(l.current+1) == '/':
			for !l.isAtEnd() && l.peekRune() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// scanToken scans one token starting at the current position. It returns
// false when the character was illegal and skipped.
func (l *Lexer) scanToken() (Token, bool) {
	r := l.advance()

	switch r {
	case '(':
		return l.emit(TOKEN_LPAREN), true
	case ')':
		return l.emit(TOKEN_RPAREN), true
	case '{':
		return l.emit(TOKEN_LBRACE), true
	case '}':
		return l.emit(TOKEN_RBRACE), true
	case ';':
		return l.emit(TOKEN_SEMICOLON), true
	case ',':
		return l.emit(TOKEN_COMMA), true
	case '+':
		return l.emit(TOKEN_PLUS), true
	case '-':
		return l.emit(TOKEN_MINUS), true

	// Two-character operators are matched before their one-character prefixes.
	case '=':
		if l.match('=') {
			return l.emit(TOKEN_EQ), true
		}
		return l.emit(TOKEN_ASSIGN), true
	case '<':
		if l.match('=') {
			return l.emit(TOKEN_LE), true
		}
		return l.emit(TOKEN_LT), true
	case '>':
		if l.match('=') {
			return l.emit(TOKEN_GE), true
		}
		return l.emit(TOKEN_GT), true
	case '!':
		if l.match('=') {
			return l.emit(TOKEN_NEQ), true
		}
	}

	switch {
	case isDigit(r):
		return l.scanNumber(), true
	case isIdentStart(r):
		return l.scanWord(), true
	}

	l.illegal(r)
	return Token{}, false
}

// scanNumber scans a maximal run of decimal digits.
func (l *Lexer) scanNumber() Token {
	for !l.isAtEnd() && isDigit(l.peekRune()) {
		l.advance()
	}

	tok := l.emit(TOKEN_NUMBER)
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		l.diags.AddLexical(cerr.CodeNumberRange, tok.Line, tok.Column,
			fmt.Sprintf("Integer literal %s out of range", tok.Literal))
		value = 0
	}
	tok.Value = value
	return tok
}

// scanWord scans a keyword or identifier.
func (l *Lexer) scanWord() Token {
	for !l.isAtEnd() && isIdentPart(l.peekRune()) {
		l.advance()
	}
	word := l.source[l.start:l.current]
	tok := l.emit(l.keywords.Lookup(word))
	return tok
}

// illegal records a lexical diagnostic for the rune just consumed.
func (l *Lexer) illegal(r rune) {
	l.diags.AddLexical(cerr.CodeIllegalChar, l.tokLine, l.tokColumn,
		fmt.Sprintf("Illegal character '%c'", r))
	l.logger.Debug("illegal character",
		slog.String("char", string(r)),
		slog.Int("line", l.tokLine),
		slog.Int("column", l.tokColumn))
}

// ── Character scanning helpers ──

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peekRune() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) peekRuneAt(offset int) rune {
	if offset >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[offset:])
	return r
}

// advance consumes the current rune and moves forward one column.
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

// match consumes the current rune if it equals want.
func (l *Lexer) match(want rune) bool {
	if l.peekRune() != want || l.isAtEnd() {
		return false
	}
	l.advance()
	return true
}

// emit builds a token from the scanned lexeme.
func (l *Lexer) emit(tokenType TokenType) Token {
	return Token{
		Type:    tokenType,
		Literal: l.source[l.start:l.current],
		Line:    l.tokLine,
		Column:  l.tokColumn,
	}
}

// ── Character classification helpers ──

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
