package parser

import (
	"fmt"
	"log/slog"
	"strings"

	cerr "github.com/barun-bash/cfront/internal/errors"
	"github.com/barun-bash/cfront/internal/lexer"
	"github.com/barun-bash/cfront/internal/profile"
)

// Options configures a parse run. The zero value parses with the full
// profile, no logging and the default diagnostics limit.
type Options struct {
	Profile *profile.Profile
	Logger  *slog.Logger
	File    string // reported in diagnostics

	// MaxDiagnostics caps stored diagnostics; <= 0 means cerr.DefaultLimit.
	MaxDiagnostics int

	// Diagnostics, when set, receives the run's diagnostics instead of a
	// private collector. File and MaxDiagnostics are then ignored.
	Diagnostics *cerr.Diagnostics
}

// Parse lexes and parses source with the full profile. It returns either
// a program and no diagnostics, or nil and at least one diagnostic.
func Parse(source string) (*Program, []*cerr.Diagnostic) {
	return ParseWith(source, Options{})
}

// ParseWith is Parse with explicit options.
func ParseWith(source string, opts Options) (*Program, []*cerr.Diagnostic) {
	prof, logger, diags := opts.resolve()
	lex := lexer.New(source, prof.Keywords, diags).
		WithLogger(logger.With(slog.String("component", "lexer")))
	return run(lex, prof, diags, logger)
}

// ParseTokens parses a pre-built token stream. Only syntax diagnostics
// are reported; the stream is treated as ending at its first TOKEN_EOF.
func ParseTokens(tokens []lexer.Token, opts Options) (*Program, []*cerr.Diagnostic) {
	prof, logger, diags := opts.resolve()
	return run(&sliceSource{tokens: tokens}, prof, diags, logger)
}

func (o Options) resolve() (*profile.Profile, *slog.Logger, *cerr.Diagnostics) {
	prof := o.Profile
	if prof == nil {
		prof = profile.Default()
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	diags := o.Diagnostics
	if diags == nil {
		diags = cerr.New(o.File)
		diags.SetLimit(o.MaxDiagnostics)
	}
	return prof, logger, diags
}

func run(src tokenSource, prof *profile.Profile, diags *cerr.Diagnostics, logger *slog.Logger) (*Program, []*cerr.Diagnostic) {
	logger = logger.With(slog.String("component", "parser"))
	logger.Debug("parse started", slog.String("profile", prof.Name))

	p := newParser(src, prof, diags, logger)
	prog := p.parseProgram()

	logger.Debug("parse finished",
		slog.Int("items", len(prog.Items)),
		slog.Int("diagnostics", diags.Len()),
		slog.Int("dropped", diags.Dropped()))

	if diags.HasErrors() {
		return nil, diags.All()
	}
	return prog, nil
}

// tokenSource yields tokens one at a time and repeats TOKEN_EOF at the end.
type tokenSource interface {
	Next() lexer.Token
}

type sliceSource struct {
	tokens []lexer.Token
	pos    int
}

func (s *sliceSource) Next() lexer.Token {
	if s.pos >= len(s.tokens) {
		eof := lexer.Token{Type: lexer.TOKEN_EOF, Line: 1, Column: 1}
		if n := len(s.tokens); n > 0 {
			eof.Line, eof.Column = s.tokens[n-1].Line, s.tokens[n-1].Column
		}
		return eof
	}
	tok := s.tokens[s.pos]
	if tok.Type != lexer.TOKEN_EOF {
		s.pos++
	}
	return tok
}

// parser holds the state for a single parse run: one token of lookahead
// and nothing else from the stream.
type parser struct {
	src    tokenSource
	tok    lexer.Token
	prof   *profile.Profile
	diags  *cerr.Diagnostics
	logger *slog.Logger

	rules map[lexer.TokenType]statementRule
	order []statementRule
}

func newParser(src tokenSource, prof *profile.Profile, diags *cerr.Diagnostics, logger *slog.Logger) *parser {
	p := &parser{
		src:    src,
		prof:   prof,
		diags:  diags,
		logger: logger,
		rules:  map[lexer.TokenType]statementRule{},
	}
	for _, r := range statementRules() {
		p.rules[r.lead] = r
		p.order = append(p.order, r)
	}
	p.advance()
	return p
}

// ── Program and items ──

func (p *parser) parseProgram() *Program {
	prog := &Program{}

	if p.prof.SingleItem {
		if item := p.parseSingle(); item != nil {
			prog.Items = append(prog.Items, item)
		}
		// Scan to the end so lexical errors past the item are still reported.
		for !p.check(lexer.TOKEN_EOF) {
			p.advance()
		}
		return prog
	}

	for !p.check(lexer.TOKEN_EOF) && !p.diags.Full() {
		if p.check(lexer.TOKEN_RBRACE) {
			p.trailing()
			p.advance()
			continue
		}
		item := p.parseTopLevel()
		if item == nil {
			p.synchronize(true)
			continue
		}
		prog.Items = append(prog.Items, item)
	}
	return prog
}

// parseSingle parses the one item of a single-item profile and reports
// anything after it as trailing input.
func (p *parser) parseSingle() Item {
	if _, ok := p.prof.StartKind(); !ok && p.check(lexer.TOKEN_EOF) {
		p.unexpected(p.itemStarts()...)
		return nil
	}
	item := p.parseTopLevel()
	if item == nil {
		return nil
	}
	if !p.check(lexer.TOKEN_EOF) {
		p.trailing()
	}
	return item
}

// parseTopLevel parses an item, holding it to the profile's start
// construct when there is one.
func (p *parser) parseTopLevel() Item {
	if kind, ok := p.prof.StartKind(); ok && !p.check(kind) {
		p.unexpected(kind)
		return nil
	}
	return p.parseItem()
}

func (p *parser) parseItem() Item {
	if p.check(lexer.TOKEN_TYPE) {
		if !p.prof.Enabled(profile.ConstructFunction) {
			p.disabled(profile.ConstructFunction)
			return nil
		}
		if fn := p.parseFunction(); fn != nil {
			return fn
		}
		return nil
	}
	if s := p.parseStatement(true); s != nil {
		return s
	}
	return nil
}

// function_decl := TYPE IDENT '(' param_list? ')' block
func (p *parser) parseFunction() *FunctionDecl {
	typeTok := p.advance()
	name, ok := p.expect(lexer.TOKEN_IDENTIFIER)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TOKEN_LPAREN); !ok {
		return nil
	}

	fn := &FunctionDecl{
		Position:   posOf(typeTok),
		ReturnType: typeTok.Literal,
		Name:       name.Literal,
	}

	switch {
	case p.check(lexer.TOKEN_RPAREN):
	case p.check(lexer.TOKEN_TYPE):
		for {
			param := p.parseParam()
			if param == nil {
				return nil
			}
			fn.Params = append(fn.Params, param)
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	default:
		p.unexpected(lexer.TOKEN_TYPE, lexer.TOKEN_RPAREN)
		return nil
	}

	if _, ok := p.expect(lexer.TOKEN_RPAREN); !ok {
		return nil
	}
	fn.Body = p.parseBlock()
	if fn.Body == nil {
		return nil
	}
	return fn
}

// param := TYPE IDENT
func (p *parser) parseParam() *Param {
	typeTok, ok := p.expect(lexer.TOKEN_TYPE)
	if !ok {
		return nil
	}
	name, ok := p.expect(lexer.TOKEN_IDENTIFIER)
	if !ok {
		return nil
	}
	return &Param{Position: posOf(typeTok), Type: typeTok.Literal, Name: name.Literal}
}

// block := '{' statement* '}'
//
// A block whose braces match is returned even when statements inside it
// failed; the failures are already recorded.
func (p *parser) parseBlock() *Block {
	open, ok := p.expect(lexer.TOKEN_LBRACE)
	if !ok {
		return nil
	}
	blk := &Block{Position: posOf(open)}

	for !p.check(lexer.TOKEN_RBRACE) && !p.check(lexer.TOKEN_EOF) {
		if p.diags.Full() {
			return nil
		}
		s := p.parseStatement(false)
		if s == nil {
			p.synchronize(false)
			continue
		}
		blk.Statements = append(blk.Statements, s)
	}

	if _, ok := p.expect(lexer.TOKEN_RBRACE); !ok {
		return nil
	}
	return blk
}

// parseStatement dispatches on the leading token through the rule registry.
func (p *parser) parseStatement(topLevel bool) Statement {
	rule, ok := p.rules[p.tok.Type]
	if !ok {
		if topLevel {
			p.unexpected(p.itemStarts()...)
		} else {
			p.unexpected(p.statementStarts()...)
		}
		return nil
	}
	if !p.prof.Enabled(rule.construct) {
		p.disabled(rule.construct)
		return nil
	}
	return rule.parse(p)
}

// statementStarts lists the leading tokens of the enabled statement rules.
func (p *parser) statementStarts() []lexer.TokenType {
	var starts []lexer.TokenType
	for _, r := range p.order {
		if p.prof.Enabled(r.construct) {
			starts = append(starts, r.lead)
		}
	}
	return starts
}

// itemStarts is statementStarts plus TYPE when functions are enabled.
func (p *parser) itemStarts() []lexer.TokenType {
	starts := p.statementStarts()
	if p.prof.Enabled(profile.ConstructFunction) {
		starts = append(starts, lexer.TOKEN_TYPE)
	}
	return starts
}

// ── Token movement ──

// advance consumes the lookahead token and returns it.
func (p *parser) advance() lexer.Token {
	prev := p.tok
	p.tok = p.src.Next()
	return prev
}

func (p *parser) check(t lexer.TokenType) bool {
	return p.tok.Type == t
}

func (p *parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of type t or reports it as missing.
func (p *parser) expect(t lexer.TokenType) (lexer.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.unexpected(t)
	return p.tok, false
}

func posOf(tok lexer.Token) Position {
	return Position{Line: tok.Line, Column: tok.Column}
}

// ── Error handling ──

// unexpected reports the lookahead token as not one of expected. It
// returns the stored diagnostic, or nil when the collector is full.
func (p *parser) unexpected(expected ...lexer.TokenType) *cerr.Diagnostic {
	names := make([]string, len(expected))
	for i, t := range expected {
		names[i] = t.String()
	}
	return p.syntaxError(alternatives(names), names)
}

// syntaxError reports "expected <what>, found <lookahead>".
func (p *parser) syntaxError(what string, expected []string) *cerr.Diagnostic {
	found := p.tok.Describe()
	d := &cerr.Diagnostic{
		Severity: cerr.SeveritySyntax,
		Code:     cerr.CodeUnexpectedToken,
		Message:  fmt.Sprintf("expected %s, found %s", what, found),
		Line:     p.tok.Line,
		Column:   p.tok.Column,
		Expected: expected,
		Found:    found,
	}
	return p.report(d)
}

func (p *parser) trailing() {
	found := p.tok.Describe()
	p.report(&cerr.Diagnostic{
		Severity: cerr.SeveritySyntax,
		Code:     cerr.CodeTrailingInput,
		Message:  fmt.Sprintf("unexpected trailing input starting at %s", found),
		Line:     p.tok.Line,
		Column:   p.tok.Column,
		Expected: []string{lexer.TOKEN_EOF.String()},
		Found:    found,
	})
}

func (p *parser) disabled(c profile.Construct) {
	p.report(&cerr.Diagnostic{
		Severity: cerr.SeveritySyntax,
		Code:     cerr.CodeDisabled,
		Message:  fmt.Sprintf("%s are not enabled in profile %q", constructNoun[c], p.prof.Name),
		Line:     p.tok.Line,
		Column:   p.tok.Column,
		Found:    p.tok.Describe(),
	})
}

func (p *parser) report(d *cerr.Diagnostic) *cerr.Diagnostic {
	if !p.diags.Add(d) {
		return nil
	}
	p.logger.Debug("syntax error",
		slog.String("code", d.Code),
		slog.Int("line", d.Line),
		slog.Int("column", d.Column),
		slog.String("found", d.Found))
	return d
}

// synchronize discards tokens after a failed statement or item. It stops
// after a ';', before a '}' or at end of input. A '{ ... }' group is
// skipped as a unit together with any else arms that follow it. At top
// level a stray '}' is consumed, since no block is waiting for it.
func (p *parser) synchronize(topLevel bool) {
	for !p.check(lexer.TOKEN_EOF) {
		switch p.tok.Type {
		case lexer.TOKEN_SEMICOLON:
			p.advance()
			return
		case lexer.TOKEN_RBRACE:
			if topLevel {
				p.advance()
			}
			return
		case lexer.TOKEN_LBRACE:
			p.skipGroup()
			for p.check(lexer.TOKEN_ELSE) {
				p.advance()
				if p.check(lexer.TOKEN_LBRACE) {
					p.skipGroup()
				}
			}
			return
		default:
			p.advance()
		}
	}
}

// skipGroup consumes a balanced brace group starting at '{'.
func (p *parser) skipGroup() {
	depth := 0
	for !p.check(lexer.TOKEN_EOF) {
		switch p.advance().Type {
		case lexer.TOKEN_LBRACE:
			depth++
		case lexer.TOKEN_RBRACE:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// alternatives joins names as "a", "a or b", "a, b or c".
func alternatives(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
