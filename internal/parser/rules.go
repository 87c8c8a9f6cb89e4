package parser

import (
	cerr "github.com/barun-bash/cfront/internal/errors"
	"github.com/barun-bash/cfront/internal/lexer"
	"github.com/barun-bash/cfront/internal/profile"
)

// statementRule parses one statement kind. Every statement is introduced
// by a distinct token, which is what keeps the grammar LL(1); adding a
// construct means adding a rule here.
type statementRule struct {
	lead      lexer.TokenType
	construct profile.Construct
	parse     func(*parser) Statement
}

// statementRules returns the registry in grammar order. It is built per
// parser rather than held in a package variable because the rules refer
// back to parser methods.
func statementRules() []statementRule {
	return []statementRule{
		{lexer.TOKEN_IDENTIFIER, profile.ConstructAssign, (*parser).parseAssign},
		{lexer.TOKEN_IF, profile.ConstructIf, (*parser).parseIf},
		{lexer.TOKEN_WHILE, profile.ConstructWhile, (*parser).parseWhile},
		{lexer.TOKEN_RETURN, profile.ConstructReturn, (*parser).parseReturn},
	}
}

// constructNoun names a construct in "not enabled" diagnostics.
var constructNoun = map[profile.Construct]string{
	profile.ConstructAssign:   "assignments",
	profile.ConstructIf:       "'if' statements",
	profile.ConstructElse:     "'else' arms",
	profile.ConstructWhile:    "'while' statements",
	profile.ConstructReturn:   "'return' statements",
	profile.ConstructFunction: "function definitions",
}

// assignment := IDENT '=' expr ';'
func (p *parser) parseAssign() Statement {
	target := p.advance()
	if !p.check(lexer.TOKEN_ASSIGN) {
		// An identifier that fails right away is often a misspelled keyword.
		if d := p.unexpected(lexer.TOKEN_ASSIGN); d != nil {
			d.Suggestion = cerr.SuggestKeyword(target.Literal, p.prof.Keywords.Words())
		}
		return nil
	}
	p.advance()

	value := p.parseExpr()
	if value == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TOKEN_SEMICOLON); !ok {
		return nil
	}
	return &AssignStmt{Position: posOf(target), Target: target.Literal, Value: value}
}

// if_stmt := 'if' '(' condition ')' block ('else' block)?
func (p *parser) parseIf() Statement {
	ifTok := p.advance()
	cond := p.parseParenCondition()
	if cond == nil {
		return nil
	}
	then := p.parseBlock()
	if then == nil {
		return nil
	}
	stmt := &IfStmt{Position: posOf(ifTok), Cond: cond, Then: then}

	if p.check(lexer.TOKEN_ELSE) {
		if !p.prof.Enabled(profile.ConstructElse) {
			p.disabled(profile.ConstructElse)
			return nil
		}
		p.advance()
		stmt.Else = p.parseBlock()
		if stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

// while_stmt := 'while' '(' condition ')' block
func (p *parser) parseWhile() Statement {
	whileTok := p.advance()
	cond := p.parseParenCondition()
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &WhileStmt{Position: posOf(whileTok), Cond: cond, Body: body}
}

// return_stmt := 'return' expr ';'
func (p *parser) parseReturn() Statement {
	retTok := p.advance()
	value := p.parseExpr()
	if value == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TOKEN_SEMICOLON); !ok {
		return nil
	}
	return &ReturnStmt{Position: posOf(retTok), Value: value}
}

// ── Conditions and expressions ──

// parseParenCondition parses '(' condition ')'.
func (p *parser) parseParenCondition() *Condition {
	if _, ok := p.expect(lexer.TOKEN_LPAREN); !ok {
		return nil
	}
	cond := p.parseCondition()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TOKEN_RPAREN); !ok {
		return nil
	}
	return cond
}

// condition := expr rel_op expr
func (p *parser) parseCondition() *Condition {
	left := p.parseExpr()
	if left == nil {
		return nil
	}
	if !p.tok.Type.IsRelational() {
		p.unexpected(relationalOps...)
		return nil
	}
	op := p.advance()
	right := p.parseExpr()
	if right == nil {
		return nil
	}
	return &Condition{Position: left.Pos(), Op: op.Literal, Left: left, Right: right}
}

var relationalOps = []lexer.TokenType{
	lexer.TOKEN_EQ, lexer.TOKEN_NEQ,
	lexer.TOKEN_LT, lexer.TOKEN_GT,
	lexer.TOKEN_LE, lexer.TOKEN_GE,
}

// parseExpr parses an arithmetic expression in the profile's mode.
func (p *parser) parseExpr() Expression {
	if p.prof.Expressions == profile.ExprNarrow {
		return p.parseNarrowExpr()
	}
	return p.parseFlatExpr()
}

// expr := term (('+' | '-') term)*
func (p *parser) parseFlatExpr() Expression {
	left := p.parseTerm()
	if left == nil {
		return nil
	}
	for p.check(lexer.TOKEN_PLUS) || p.check(lexer.TOKEN_MINUS) {
		op := p.advance()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		left = &BinaryExpr{Position: left.Pos(), Op: op.Literal, Left: left, Right: right}
	}
	return left
}

// expr := NUMBER | IDENT | IDENT ('+' | '-') NUMBER
func (p *parser) parseNarrowExpr() Expression {
	if p.check(lexer.TOKEN_NUMBER) {
		return p.parseTerm()
	}
	if !p.check(lexer.TOKEN_IDENTIFIER) {
		p.syntaxError("expression", termNames())
		return nil
	}
	left := p.parseTerm()
	if !p.check(lexer.TOKEN_PLUS) && !p.check(lexer.TOKEN_MINUS) {
		return left
	}
	op := p.advance()
	num, ok := p.expect(lexer.TOKEN_NUMBER)
	if !ok {
		return nil
	}
	right := &NumberLiteral{Position: posOf(num), Value: num.Value}
	return &BinaryExpr{Position: left.Pos(), Op: op.Literal, Left: left, Right: right}
}

// term := IDENT | NUMBER
func (p *parser) parseTerm() Expression {
	switch p.tok.Type {
	case lexer.TOKEN_IDENTIFIER:
		tok := p.advance()
		return &Identifier{Position: posOf(tok), Name: tok.Literal}
	case lexer.TOKEN_NUMBER:
		tok := p.advance()
		return &NumberLiteral{Position: posOf(tok), Value: tok.Value}
	}
	p.syntaxError("expression", termNames())
	return nil
}

func termNames() []string {
	return []string{lexer.TOKEN_IDENTIFIER.String(), lexer.TOKEN_NUMBER.String()}
}
