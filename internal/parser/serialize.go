package parser

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// dumpNode is the kind-tagged form of an AST node used by ToJSON and ToYAML.
type dumpNode struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Line       int         `json:"line" yaml:"line"`
	Column     int         `json:"column" yaml:"column"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string      `json:"type,omitempty" yaml:"type,omitempty"`
	Target     string      `json:"target,omitempty" yaml:"target,omitempty"`
	Op         string      `json:"op,omitempty" yaml:"op,omitempty"`
	Value      *int64      `json:"value,omitempty" yaml:"value,omitempty"`
	Params     []*dumpNode `json:"params,omitempty" yaml:"params,omitempty"`
	Cond       *dumpNode   `json:"cond,omitempty" yaml:"cond,omitempty"`
	Left       *dumpNode   `json:"left,omitempty" yaml:"left,omitempty"`
	Right      *dumpNode   `json:"right,omitempty" yaml:"right,omitempty"`
	Expr       *dumpNode   `json:"expr,omitempty" yaml:"expr,omitempty"`
	Body       *dumpNode   `json:"body,omitempty" yaml:"body,omitempty"`
	Then       *dumpNode   `json:"then,omitempty" yaml:"then,omitempty"`
	Else       *dumpNode   `json:"else,omitempty" yaml:"else,omitempty"`
	Statements []*dumpNode `json:"statements,omitempty" yaml:"statements,omitempty"`
}

type dumpProgram struct {
	Items []*dumpNode `json:"items" yaml:"items"`
}

// ToJSON serializes the program to indented JSON.
func ToJSON(prog *Program) ([]byte, error) {
	data, err := json.MarshalIndent(dump(prog), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("parser: JSON marshal failed: %w", err)
	}
	return data, nil
}

// ToYAML serializes the program to YAML.
func ToYAML(prog *Program) (string, error) {
	data, err := yaml.Marshal(dump(prog))
	if err != nil {
		return "", fmt.Errorf("parser: YAML marshal failed: %w", err)
	}
	return string(data), nil
}

func dump(prog *Program) *dumpProgram {
	out := &dumpProgram{Items: []*dumpNode{}}
	if prog == nil {
		return out
	}
	for _, item := range prog.Items {
		out.Items = append(out.Items, dumpItem(item))
	}
	return out
}

func newDump(kind string, pos Position) *dumpNode {
	return &dumpNode{Kind: kind, Line: pos.Line, Column: pos.Column}
}

func dumpItem(item Item) *dumpNode {
	switch n := item.(type) {
	case *FunctionDecl:
		d := newDump("function", n.Position)
		d.Name = n.Name
		d.Type = n.ReturnType
		for _, param := range n.Params {
			pd := newDump("param", param.Position)
			pd.Name = param.Name
			pd.Type = param.Type
			d.Params = append(d.Params, pd)
		}
		d.Body = dumpBlock(n.Body)
		return d
	case Statement:
		return dumpStatement(n)
	}
	return nil
}

func dumpBlock(blk *Block) *dumpNode {
	if blk == nil {
		return nil
	}
	d := newDump("block", blk.Position)
	for _, s := range blk.Statements {
		d.Statements = append(d.Statements, dumpStatement(s))
	}
	return d
}

func dumpStatement(s Statement) *dumpNode {
	switch n := s.(type) {
	case *AssignStmt:
		d := newDump("assign", n.Position)
		d.Target = n.Target
		d.Expr = dumpExpr(n.Value)
		return d
	case *IfStmt:
		d := newDump("if", n.Position)
		d.Cond = dumpCondition(n.Cond)
		d.Then = dumpBlock(n.Then)
		d.Else = dumpBlock(n.Else)
		return d
	case *WhileStmt:
		d := newDump("while", n.Position)
		d.Cond = dumpCondition(n.Cond)
		d.Body = dumpBlock(n.Body)
		return d
	case *ReturnStmt:
		d := newDump("return", n.Position)
		d.Expr = dumpExpr(n.Value)
		return d
	}
	return nil
}

func dumpCondition(c *Condition) *dumpNode {
	d := newDump("condition", c.Position)
	d.Op = c.Op
	d.Left = dumpExpr(c.Left)
	d.Right = dumpExpr(c.Right)
	return d
}

func dumpExpr(e Expression) *dumpNode {
	switch n := e.(type) {
	case *Identifier:
		d := newDump("identifier", n.Position)
		d.Name = n.Name
		return d
	case *NumberLiteral:
		d := newDump("number", n.Position)
		v := n.Value
		d.Value = &v
		return d
	case *BinaryExpr:
		d := newDump("binary", n.Position)
		d.Op = n.Op
		d.Left = dumpExpr(n.Left)
		d.Right = dumpExpr(n.Right)
		return d
	}
	return nil
}
