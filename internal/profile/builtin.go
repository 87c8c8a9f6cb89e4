package profile

import "fmt"

// builtinSpecs are the feature levels the language grew through, from a
// lone if statement to the full grammar.
var builtinSpecs = map[string]Spec{
	"if": {
		Keywords:   map[string]string{"if": "if"},
		Constructs: []string{"assign", "if"},
		SingleItem: true,
		Start:      "if",
	},
	"ifelse": {
		Keywords:   map[string]string{"if": "if", "else": "else"},
		Constructs: []string{"assign", "if", "else"},
		SingleItem: true,
		Start:      "if",
	},
	"ifelse-narrow": {
		Keywords:    map[string]string{"if": "if", "else": "else"},
		Constructs:  []string{"assign", "if", "else"},
		Expressions: string(ExprNarrow),
		SingleItem:  true,
		Start:       "if",
	},
	"while": {
		// else is reserved so a stray else arm is reported as disabled.
		Keywords:   map[string]string{"if": "if", "else": "else", "while": "while"},
		Constructs: []string{"assign", "if", "while"},
	},
	"function": {
		Keywords: map[string]string{
			"if": "if", "return": "return",
			"int": "type", "void": "type", "float": "type",
		},
		Constructs: []string{"assign", "if", "return", "function"},
		SingleItem: true,
		Start:      "function",
	},
	"full": {
		Keywords: map[string]string{
			"if": "if", "else": "else", "while": "while", "return": "return",
			"int": "type", "void": "type", "float": "type",
		},
		Constructs: []string{"assign", "if", "else", "while", "return", "function"},
	},
}

// builtinDescriptions are shown by the profiles listing.
var builtinDescriptions = map[string]string{
	"if":            "a single if statement with assignments",
	"ifelse":        "a single if statement with an optional else arm",
	"ifelse-narrow": "if/else with expressions limited to IDENT +/- NUMBER",
	"while":         "a program of assignments, if and while statements",
	"function":      "a single typed function definition with return",
	"full":          "every construct; top-level statements and functions",
}

// Builtin returns a fresh copy of the named built-in profile.
func Builtin(name string) (*Profile, error) {
	spec, ok := builtinSpecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (available: %v)", name, BuiltinNames())
	}
	spec.Name = name
	return Build(spec)
}

// Default returns the full profile.
func Default() *Profile {
	p, err := Builtin(DefaultName)
	if err != nil {
		panic(err) // built-in table is static
	}
	return p
}

// BuiltinNames returns the built-in profile names in sorted order.
func BuiltinNames() []string {
	return sortedNames(builtinSpecs)
}

// Describe returns the description of a built-in profile, or "".
func Describe(name string) string {
	return builtinDescriptions[name]
}
