package lexer

import (
	"fmt"
	"sort"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TOKEN_EOF TokenType = iota

	// Punctuation
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_SEMICOLON // ;
	TOKEN_COMMA     // ,
	TOKEN_ASSIGN    // =

	// Operators
	TOKEN_PLUS  // +
	TOKEN_MINUS // -
	TOKEN_EQ    // ==
	TOKEN_NEQ   // !=
	TOKEN_LT    // <
	TOKEN_GT    // >
	TOKEN_LE    // <=
	TOKEN_GE    // >=

	// Literals
	TOKEN_IDENTIFIER // counter, _tmp1
	TOKEN_NUMBER     // 42

	// Keywords
	TOKEN_IF     // if
	TOKEN_ELSE   // else
	TOKEN_WHILE  // while
	TOKEN_RETURN // return
	TOKEN_TYPE   // int, void, float
)

// tokenNames maps token types to their display names. Names are what
// diagnostics show in "expected ..." lists.
var tokenNames = map[TokenType]string{
	TOKEN_EOF: "end of input",

	TOKEN_LPAREN:    "'('",
	TOKEN_RPAREN:    "')'",
	TOKEN_LBRACE:    "'{'",
	TOKEN_RBRACE:    "'}'",
	TOKEN_SEMICOLON: "';'",
	TOKEN_COMMA:     "','",
	TOKEN_ASSIGN:    "'='",

	TOKEN_PLUS:  "'+'",
	TOKEN_MINUS: "'-'",
	TOKEN_EQ:    "'=='",
	TOKEN_NEQ:   "'!='",
	TOKEN_LT:    "'<'",
	TOKEN_GT:    "'>'",
	TOKEN_LE:    "'<='",
	TOKEN_GE:    "'>='",

	TOKEN_IDENTIFIER: "identifier",
	TOKEN_NUMBER:     "number",

	TOKEN_IF:     "'if'",
	TOKEN_ELSE:   "'else'",
	TOKEN_WHILE:  "'while'",
	TOKEN_RETURN: "'return'",
	TOKEN_TYPE:   "type name",
}

// String returns the display name of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// dumpNames are the uppercase kind names used in token listings.
var dumpNames = map[TokenType]string{
	TOKEN_EOF:        "EOF",
	TOKEN_LPAREN:     "LPAREN",
	TOKEN_RPAREN:     "RPAREN",
	TOKEN_LBRACE:     "LBRACE",
	TOKEN_RBRACE:     "RBRACE",
	TOKEN_SEMICOLON:  "SEMICOLON",
	TOKEN_COMMA:      "COMMA",
	TOKEN_ASSIGN:     "ASSIGN",
	TOKEN_PLUS:       "PLUS",
	TOKEN_MINUS:      "MINUS",
	TOKEN_EQ:         "EQ",
	TOKEN_NEQ:        "NEQ",
	TOKEN_LT:         "LT",
	TOKEN_GT:         "GT",
	TOKEN_LE:         "LE",
	TOKEN_GE:         "GE",
	TOKEN_IDENTIFIER: "IDENTIFIER",
	TOKEN_NUMBER:     "NUMBER",
	TOKEN_IF:         "IF",
	TOKEN_ELSE:       "ELSE",
	TOKEN_WHILE:      "WHILE",
	TOKEN_RETURN:     "RETURN",
	TOKEN_TYPE:       "TYPE",
}

// Name returns the uppercase kind name, e.g. "LPAREN".
func (t TokenType) Name() string {
	if name, ok := dumpNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// IsRelational reports whether t is one of == != < > <= >=.
func (t TokenType) IsRelational() bool {
	switch t {
	case TOKEN_EQ, TOKEN_NEQ, TOKEN_LT, TOKEN_GT, TOKEN_LE, TOKEN_GE:
		return true
	}
	return false
}

// Token represents a single lexical token with its position in the source.
type Token struct {
	Type    TokenType
	Literal string // the actual source text of the token
	Value   int64  // integer value for TOKEN_NUMBER
	Line    int    // 1-based line number
	Column  int    // 1-based column number
}

// String returns a human-readable representation of a token.
func (t Token) String() string {
	if t.Type == TOKEN_EOF {
		return "EOF"
	}
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Type.Name(), t.Literal)
}

// Describe returns the token as it appears in a diagnostic: the quoted
// lexeme, or "end of input".
func (t Token) Describe() string {
	if t.Type == TOKEN_EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Literal)
}

// keywordKinds maps the names used in profile files to keyword token types.
var keywordKinds = map[string]TokenType{
	"if":     TOKEN_IF,
	"else":   TOKEN_ELSE,
	"while":  TOKEN_WHILE,
	"return": TOKEN_RETURN,
	"type":   TOKEN_TYPE,
}

// KindByName returns the keyword token type for a profile kind name.
func KindByName(name string) (TokenType, bool) {
	t, ok := keywordKinds[name]
	return t, ok
}

// Keywords maps reserved words to keyword token types. Matching is
// case-sensitive. A lexeme not in the table is a plain identifier.
type Keywords map[string]TokenType

// DefaultKeywords returns a fresh copy of the full keyword table.
func DefaultKeywords() Keywords {
	return Keywords{
		"if":     TOKEN_IF,
		"else":   TOKEN_ELSE,
		"while":  TOKEN_WHILE,
		"return": TOKEN_RETURN,
		"int":    TOKEN_TYPE,
		"void":   TOKEN_TYPE,
		"float":  TOKEN_TYPE,
	}
}

// Lookup returns the keyword token type for word, or TOKEN_IDENTIFIER.
func (k Keywords) Lookup(word string) TokenType {
	if tok, ok := k[word]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

// Words returns the reserved words in sorted order.
func (k Keywords) Words() []string {
	words := make([]string, 0, len(k))
	for w := range k {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Has reports whether any word in the table maps to t.
func (k Keywords) Has(t TokenType) bool {
	for _, kind := range k {
		if kind == t {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the table.
func (k Keywords) Clone() Keywords {
	out := make(Keywords, len(k))
	for w, t := range k {
		out[w] = t
	}
	return out
}
