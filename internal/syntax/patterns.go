package syntax

// Category represents a logical grouping of syntax patterns.
type Category string

const (
	CatProgram     Category = "program"
	CatStatements  Category = "statements"
	CatFunctions   Category = "functions"
	CatExpressions Category = "expressions"
	CatConditions  Category = "conditions"
	CatLexical     Category = "lexical"
	CatProfiles    Category = "profiles"
	CatErrors      Category = "errors"
)

// Pattern represents a single syntax pattern of the language.
type Pattern struct {
	Template    string // "while (<condition>) { <statements> }"
	Description string
	Category    Category
	Tags        []string // search tags
	Example     string   // full usage example
	Related     []string // related pattern templates

	// Profile is the profile the example is written for; empty means full.
	Profile string
	// Code is the diagnostic the example produces. Empty for valid examples.
	Code string
}

// CategoryLabel returns a human-readable label for a category.
func CategoryLabel(cat Category) string {
	labels := map[Category]string{
		CatProgram:     "Program Structure",
		CatStatements:  "Statements",
		CatFunctions:   "Functions",
		CatExpressions: "Expressions",
		CatConditions:  "Conditions",
		CatLexical:     "Tokens & Comments",
		CatProfiles:    "Language Profiles",
		CatErrors:      "Diagnostics",
	}
	if label, ok := labels[cat]; ok {
		return label
	}
	return string(cat)
}

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CatProgram,
		CatStatements,
		CatFunctions,
		CatExpressions,
		CatConditions,
		CatLexical,
		CatProfiles,
		CatErrors,
	}
}

// ByCategory returns all patterns in a given category.
func ByCategory(cat Category) []Pattern {
	var result []Pattern
	for _, p := range allPatterns {
		if p.Category == cat {
			result = append(result, p)
		}
	}
	return result
}

// AllPatterns returns a copy of all registered patterns.
func AllPatterns() []Pattern {
	result := make([]Pattern, len(allPatterns))
	copy(result, allPatterns)
	return result
}

var allPatterns = []Pattern{
	// ── Program ──
	{
		Template:    "<item> <item> ...",
		Description: "A program is a sequence of functions and statements in any order",
		Category:    CatProgram,
		Tags:        []string{"program", "item", "top-level", "file"},
		Example:     "x = 1;\nint inc(int n) { return n + 1; }\nwhile (x < 3) { x = x + 1; }",
		Related:     []string{"<type> <name>(<params>) { <statements> }"},
	},
	{
		Template:    "<statement>",
		Description: "Statements may appear at the top level, outside any function",
		Category:    CatProgram,
		Tags:        []string{"top-level", "script", "statement"},
		Example:     "count = 0;",
	},
	{
		Template:    "{ <statements> }",
		Description: "A block groups zero or more statements; every if, else, while and function body is a block",
		Category:    CatProgram,
		Tags:        []string{"block", "braces", "scope", "body", "empty"},
		Example:     "if (a < b) { }",
	},

	// ── Statements ──
	{
		Template:    "<name> = <expression>;",
		Description: "Assign the value of an expression to a variable",
		Category:    CatStatements,
		Tags:        []string{"assign", "assignment", "variable", "set", "store"},
		Example:     "total = total + price;",
		Related:     []string{"<term> + <term>"},
	},
	{
		Template:    "if (<condition>) { <statements> }",
		Description: "Run a block only when the condition holds",
		Category:    CatStatements,
		Tags:        []string{"if", "branch", "conditional", "when"},
		Example:     "if (x == 10) { x = x + 1; }",
		Related:     []string{"if (<condition>) { <statements> } else { <statements> }"},
	},
	{
		Template:    "if (<condition>) { <statements> } else { <statements> }",
		Description: "Choose between two blocks; else always belongs to the nearest if",
		Category:    CatStatements,
		Tags:        []string{"if", "else", "branch", "otherwise"},
		Example:     "if (x == 10) { x = x + 1; } else { x = x - 1; }",
	},
	{
		Template:    "while (<condition>) { <statements> }",
		Description: "Repeat a block as long as the condition holds",
		Category:    CatStatements,
		Tags:        []string{"while", "loop", "repeat", "iterate"},
		Example:     "while (i < 10) { i = i + 1; }",
	},
	{
		Template:    "return <expression>;",
		Description: "Return a value from a function",
		Category:    CatStatements,
		Tags:        []string{"return", "result", "exit"},
		Example:     "int id(int v) { return v; }",
		Related:     []string{"<type> <name>(<params>) { <statements> }"},
	},

	// ── Functions ──
	{
		Template:    "<type> <name>(<params>) { <statements> }",
		Description: "Define a typed function; the type is int, void or float",
		Category:    CatFunctions,
		Tags:        []string{"function", "define", "procedure", "int", "void", "float"},
		Example:     "int add(int a, int b) { return a + b; }",
		Related:     []string{"<type> <name>"},
	},
	{
		Template:    "<type> <name>()",
		Description: "A function may take no parameters",
		Category:    CatFunctions,
		Tags:        []string{"function", "parameters", "empty", "no arguments"},
		Example:     "void reset() { counter = 0; }",
	},
	{
		Template:    "<type> <name>",
		Description: "Each parameter has a type and a name; parameters are separated by commas",
		Category:    CatFunctions,
		Tags:        []string{"parameter", "param", "argument", "comma"},
		Example:     "float mix(float a, float b, int weight) { return a + b; }",
	},

	// ── Expressions ──
	{
		Template:    "<identifier>",
		Description: "A variable reference: a letter or underscore followed by letters, digits or underscores",
		Category:    CatExpressions,
		Tags:        []string{"identifier", "variable", "name"},
		Example:     "y = _tmp1;",
	},
	{
		Template:    "<number>",
		Description: "A non-negative decimal integer literal",
		Category:    CatExpressions,
		Tags:        []string{"number", "integer", "literal", "constant"},
		Example:     "limit = 100;",
	},
	{
		Template:    "<term> + <term>",
		Description: "Addition of two terms",
		Category:    CatExpressions,
		Tags:        []string{"add", "plus", "sum", "arithmetic"},
		Example:     "z = x + 1;",
	},
	{
		Template:    "<term> - <term>",
		Description: "Subtraction of two terms",
		Category:    CatExpressions,
		Tags:        []string{"subtract", "minus", "difference", "arithmetic"},
		Example:     "z = x - y;",
	},
	{
		Template:    "<term> + <term> - <term> ...",
		Description: "Chains evaluate left to right: a - b + c means (a - b) + c",
		Category:    CatExpressions,
		Tags:        []string{"chain", "associativity", "left", "order"},
		Example:     "z = a - b + c;",
	},

	// ── Conditions ──
	{
		Template:    "<expression> == <expression>",
		Description: "Equal to",
		Category:    CatConditions,
		Tags:        []string{"equal", "equals", "comparison", "=="},
		Example:     "if (a == b) { }",
	},
	{
		Template:    "<expression> != <expression>",
		Description: "Not equal to",
		Category:    CatConditions,
		Tags:        []string{"not equal", "different", "comparison", "!="},
		Example:     "if (a != b) { }",
	},
	{
		Template:    "<expression> < <expression>",
		Description: "Less than",
		Category:    CatConditions,
		Tags:        []string{"less", "smaller", "comparison", "<"},
		Example:     "while (i < n) { i = i + 1; }",
	},
	{
		Template:    "<expression> > <expression>",
		Description: "Greater than",
		Category:    CatConditions,
		Tags:        []string{"greater", "larger", "comparison", ">"},
		Example:     "while (n > 0) { n = n - 1; }",
	},
	{
		Template:    "<expression> <= <expression>",
		Description: "Less than or equal to",
		Category:    CatConditions,
		Tags:        []string{"less", "at most", "comparison", "<="},
		Example:     "if (x <= limit - 1) { }",
	},
	{
		Template:    "<expression> >= <expression>",
		Description: "Greater than or equal to; a condition holds exactly one comparison",
		Category:    CatConditions,
		Tags:        []string{"greater", "at least", "comparison", ">="},
		Example:     "if (x + 1 >= y) { }",
	},

	// ── Lexical ──
	{
		Template:    "// <comment>",
		Description: "A line comment runs to the end of the line",
		Category:    CatLexical,
		Tags:        []string{"comment", "note", "slash"},
		Example:     "x = 1; // start at one",
	},
	{
		Template:    "<whitespace>",
		Description: "Spaces, tabs and newlines separate tokens and are otherwise ignored",
		Category:    CatLexical,
		Tags:        []string{"whitespace", "space", "tab", "newline", "formatting"},
		Example:     "if(x<=y){x=x+1;}",
	},
	{
		Template:    "if else while return int void float",
		Description: "Reserved words are case-sensitive; If and WHILE are plain identifiers",
		Category:    CatLexical,
		Tags:        []string{"keyword", "reserved", "case"},
		Example:     "If = 1; WHILE = If + 1;",
	},

	// ── Profiles ──
	{
		Template:    "profile if",
		Description: "A single if statement with assignments",
		Category:    CatProfiles,
		Tags:        []string{"profile", "if", "legacy", "single"},
		Example:     "if (a < b) { a = a + 1; }",
		Profile:     "if",
	},
	{
		Template:    "profile ifelse",
		Description: "A single if statement with an optional else arm",
		Category:    CatProfiles,
		Tags:        []string{"profile", "else", "legacy", "single"},
		Example:     "if (a < b) { a = 1; } else { a = 2; }",
		Profile:     "ifelse",
	},
	{
		Template:    "profile ifelse-narrow",
		Description: "if/else where expressions are <name>, <number> or <name> +/- <number>",
		Category:    CatProfiles,
		Tags:        []string{"profile", "narrow", "legacy", "expression"},
		Example:     "if (a < 10) { a = a + 1; } else { a = a - 1; }",
		Profile:     "ifelse-narrow",
	},
	{
		Template:    "profile while",
		Description: "A program of assignments, if and while statements",
		Category:    CatProfiles,
		Tags:        []string{"profile", "while", "loop", "legacy"},
		Example:     "x = 0; while (x < 10) { x = x + 1; }",
		Profile:     "while",
	},
	{
		Template:    "profile function",
		Description: "A single typed function definition",
		Category:    CatProfiles,
		Tags:        []string{"profile", "function", "return", "legacy"},
		Example:     "int f(int a) { if (a > 0) { return a; } return 0; }",
		Profile:     "function",
	},

	// ── Errors ──
	{
		Template:    "L001 illegal character",
		Description: "A character that starts no token is reported and skipped",
		Category:    CatErrors,
		Tags:        []string{"error", "illegal", "character", "lexical", "L001"},
		Example:     "x = 1 @ 2;",
		Code:        "L001",
	},
	{
		Template:    "L002 integer out of range",
		Description: "An integer literal must fit in a signed 64-bit value",
		Category:    CatErrors,
		Tags:        []string{"error", "overflow", "number", "range", "L002"},
		Example:     "x = 99999999999999999999;",
		Code:        "L002",
	},
	{
		Template:    "S001 unexpected token",
		Description: "The parser found a token that cannot continue the construct",
		Category:    CatErrors,
		Tags:        []string{"error", "syntax", "expected", "missing", "S001"},
		Example:     "if (x == ) { }",
		Code:        "S001",
	},
	{
		Template:    "S002 trailing input",
		Description: "Input after the one item of a single-item profile, or a '}' with no open block",
		Category:    CatErrors,
		Tags:        []string{"error", "trailing", "extra", "S002"},
		Example:     "if (a < b) { } c = 1;",
		Profile:     "if",
		Code:        "S002",
	},
	{
		Template:    "S003 construct not enabled",
		Description: "The construct exists in the language but the active profile disables it",
		Category:    CatErrors,
		Tags:        []string{"error", "profile", "disabled", "S003"},
		Example:     "if (a < b) { } else { }",
		Profile:     "while",
		Code:        "S003",
	},
}
