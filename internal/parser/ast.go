package parser

// Position is the 1-based source location of the first token of a node.
type Position struct {
	Line   int
	Column int
}

// Pos returns the position itself, so embedding Position satisfies Node.
func (p Position) Pos() Position { return p }

// Node is implemented by every AST node.
type Node interface {
	Pos() Position
	String() string
}

// Item is a top-level element of a program: a function definition or a
// statement.
type Item interface {
	Node
	itemNode()
}

// Statement is an assignment, if, while or return statement.
type Statement interface {
	Item
	statementNode()
}

// Expression is an identifier, a number literal or a binary + / - operation.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root AST node: the items of a source file in order.
type Program struct {
	Items []Item
}

// Functions returns the function definitions of the program in order.
func (p *Program) Functions() []*FunctionDecl {
	var out []*FunctionDecl
	for _, item := range p.Items {
		if fn, ok := item.(*FunctionDecl); ok {
			out = append(out, fn)
		}
	}
	return out
}

// FunctionDecl represents a typed function definition.
//
//	int add(int a, int b) { return a + b; }
type FunctionDecl struct {
	Position
	ReturnType string // "int", "void", "float"
	Name       string
	Params     []*Param
	Body       *Block
}

// Param is a single typed parameter.
type Param struct {
	Position
	Type string
	Name string
}

// Block is a brace-delimited statement list.
type Block struct {
	Position
	Statements []Statement
}

// AssignStmt represents: target = value;
type AssignStmt struct {
	Position
	Target string
	Value  Expression
}

// IfStmt represents an if statement. Else is nil when there is no else arm.
type IfStmt struct {
	Position
	Cond *Condition
	Then *Block
	Else *Block
}

// WhileStmt represents: while (cond) { body }
type WhileStmt struct {
	Position
	Cond *Condition
	Body *Block
}

// ReturnStmt represents: return value;
type ReturnStmt struct {
	Position
	Value Expression
}

// Condition is a single relational comparison. It is not an Expression:
// conditions never nest or combine.
type Condition struct {
	Position
	Op    string // == != < > <= >=
	Left  Expression
	Right Expression
}

// Identifier is a variable reference.
type Identifier struct {
	Position
	Name string
}

// NumberLiteral is a non-negative decimal integer.
type NumberLiteral struct {
	Position
	Value int64
}

// BinaryExpr is Left Op Right with Op "+" or "-". Chains fold to the left:
// a - b + c is (a - b) + c.
type BinaryExpr struct {
	Position
	Op    string
	Left  Expression
	Right Expression
}

func (*FunctionDecl) itemNode() {}
func (*AssignStmt) itemNode()   {}
func (*IfStmt) itemNode()       {}
func (*WhileStmt) itemNode()    {}
func (*ReturnStmt) itemNode()   {}

func (*AssignStmt) statementNode() {}
func (*IfStmt) statementNode()     {}
func (*WhileStmt) statementNode()  {}
func (*ReturnStmt) statementNode() {}

func (*Identifier) expressionNode()    {}
func (*NumberLiteral) expressionNode() {}
func (*BinaryExpr) expressionNode()    {}
