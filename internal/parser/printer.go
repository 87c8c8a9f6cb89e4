package parser

import (
	"strconv"
	"strings"
)

// indentUnit is one nesting level in printed source.
const indentUnit = "    "

// Print renders a program as canonical source text. Parsing the output
// yields a program that prints identically.
func Print(prog *Program) string {
	if prog == nil {
		return ""
	}
	var pr printer
	for i, item := range prog.Items {
		if i > 0 {
			pr.b.WriteString("\n")
		}
		pr.item(item)
	}
	return pr.b.String()
}

type printer struct {
	b     strings.Builder
	depth int
}

func (pr *printer) line(s string) {
	pr.b.WriteString(strings.Repeat(indentUnit, pr.depth))
	pr.b.WriteString(s)
}

func (pr *printer) item(item Item) {
	switch n := item.(type) {
	case *FunctionDecl:
		pr.line(n.header() + " ")
		pr.block(n.Body)
		pr.b.WriteString("\n")
	case Statement:
		pr.statement(n)
	}
}

func (pr *printer) statement(s Statement) {
	switch n := s.(type) {
	case *AssignStmt:
		pr.line(n.Target + " = " + n.Value.String() + ";\n")
	case *ReturnStmt:
		pr.line("return " + n.Value.String() + ";\n")
	case *WhileStmt:
		pr.line("while (" + n.Cond.String() + ") ")
		pr.block(n.Body)
		pr.b.WriteString("\n")
	case *IfStmt:
		pr.line("if (" + n.Cond.String() + ") ")
		pr.block(n.Then)
		if n.Else != nil {
			pr.b.WriteString(" else ")
			pr.block(n.Else)
		}
		pr.b.WriteString("\n")
	}
}

// block writes "{ ... }" starting at the current column, without a
// trailing newline.
func (pr *printer) block(blk *Block) {
	if blk == nil || len(blk.Statements) == 0 {
		pr.b.WriteString("{}")
		return
	}
	pr.b.WriteString("{\n")
	pr.depth++
	for _, s := range blk.Statements {
		pr.statement(s)
	}
	pr.depth--
	pr.line("}")
}

// ── String methods ──

func (f *FunctionDecl) header() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return f.ReturnType + " " + f.Name + "(" + strings.Join(params, ", ") + ")"
}

func (f *FunctionDecl) String() string {
	var pr printer
	pr.item(f)
	return strings.TrimSuffix(pr.b.String(), "\n")
}

func (p *Param) String() string { return p.Type + " " + p.Name }

func (b *Block) String() string {
	var pr printer
	pr.block(b)
	return pr.b.String()
}

func (s *AssignStmt) String() string { return statementString(s) }
func (s *IfStmt) String() string     { return statementString(s) }
func (s *WhileStmt) String() string  { return statementString(s) }
func (s *ReturnStmt) String() string { return statementString(s) }

func statementString(s Statement) string {
	var pr printer
	pr.statement(s)
	return strings.TrimSuffix(pr.b.String(), "\n")
}

func (c *Condition) String() string {
	return c.Left.String() + " " + c.Op + " " + c.Right.String()
}

func (e *Identifier) String() string { return e.Name }

func (e *NumberLiteral) String() string { return strconv.FormatInt(e.Value, 10) }

func (e *BinaryExpr) String() string {
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}
